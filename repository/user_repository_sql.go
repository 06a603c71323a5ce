package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// SQL drivers for the supported database types.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"fincalc/domain"
	"fincalc/logging"
)

const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 5 * time.Minute
)

type userModel struct {
	bun.BaseModel `bun:"table:users"`

	ID           string    `bun:"id,pk"`
	Username     string    `bun:"username,unique,notnull"`
	PasswordHash string    `bun:"password_hash,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
}

// SQLUserRepository keeps accounts in a relational database through bun.
type SQLUserRepository struct {
	db *bun.DB
}

// OpenSQLUserRepository opens dsn with the driver for dbType ("sqlite",
// "mysql" or "postgres") and makes sure the users table exists.
func OpenSQLUserRepository(ctx context.Context, dbType, dsn string) (*SQLUserRepository, error) {
	driverName := dbType
	// pgx stdlib registers itself as "pgx".
	if dbType == "postgres" {
		driverName = "pgx"
	}

	start := time.Now()
	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxOpen, maxIdle := defaultMaxOpenConns, defaultMaxIdleConns
	// Each connection to ":memory:" is a separate database.
	if dbType == "sqlite" && strings.Contains(dsn, ":memory:") {
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)

	db, err := newBunDB(sqlDB, dbType)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	repo := &SQLUserRepository{db: db}
	if err := repo.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}
	logging.Debugf("db: opened %s user store in %s", dbType, time.Since(start))
	return repo, nil
}

func newBunDB(sqlDB *sql.DB, dbType string) (*bun.DB, error) {
	switch dbType {
	case "sqlite":
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New()), nil
	default:
		return nil, fmt.Errorf("unsupported database type '%s'", dbType)
	}
}

func (r *SQLUserRepository) migrate(ctx context.Context) error {
	_, err := r.db.NewCreateTable().
		Model((*userModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Create inserts the user, returning ErrUserExists when the name is taken.
func (r *SQLUserRepository) Create(ctx context.Context, user domain.User) error {
	exists, err := r.db.NewSelect().
		Model((*userModel)(nil)).
		Where("username = ?", user.Username).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if exists {
		return ErrUserExists
	}

	row := &userModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		// A concurrent insert can still win the race against the check above.
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *SQLUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userModel
	err := r.db.NewSelect().
		Model(&row).
		Where("username = ?", username).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to load user: %w", err)
	}

	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (r *SQLUserRepository) Close() error {
	return r.db.Close()
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
