package repository

import (
	"context"
	"sync"

	"fincalc/domain"
)

// UserRepositoryMemory is an in-memory implementation of UserRepository.
type UserRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.User
}

// NewUserRepositoryMemory creates a new in-memory user repository.
func NewUserRepositoryMemory() *UserRepositoryMemory {
	return &UserRepositoryMemory{
		data: make(map[string]domain.User),
	}
}

// Create stores the user in memory.
func (r *UserRepositoryMemory) Create(
	ctx context.Context,
	user domain.User,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[user.Username]; exists {
		return ErrUserExists
	}
	r.data[user.Username] = user
	return nil
}

// FindByUsername returns the stored user or ErrUserNotFound.
func (r *UserRepositoryMemory) FindByUsername(
	ctx context.Context,
	username string,
) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.data[username]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}
