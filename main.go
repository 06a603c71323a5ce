// fincalc: loan repayment schedules and money-market fund projections,
// as a CLI and as a JSON API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fincalc/config"
	"fincalc/i18n"
	"fincalc/logging"
	"fincalc/repository"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fincalc",
	Short:         "Loan schedule and fund yield calculator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			level = override
		}
		return logging.Configure(level, cfg.Logging.Format)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(loanCmd)
	rootCmd.AddCommand(fundCmd)
	rootCmd.AddCommand(userCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fincalc %s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit:  %s\n", commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:   %s\n", date)
	},
}

// openCache returns the configured cache and a function releasing it.
func openCache(ctx context.Context) (repository.CacheRepository, func(), error) {
	switch cfg.Cache.Backend {
	case "redis":
		rc := repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			_ = rc.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Cache.RedisAddr, err)
		}
		logging.Infof("cache: redis at %s", cfg.Cache.RedisAddr)
		return rc, func() { _ = rc.Close() }, nil
	default:
		return repository.NewMemoryCache(), func() {}, nil
	}
}

// openUsers returns the configured user store and a function releasing it.
func openUsers(ctx context.Context) (repository.UserRepository, func(), error) {
	if cfg.Database.Type == "memory" {
		return repository.NewUserRepositoryMemory(), func() {}, nil
	}
	repo, err := repository.OpenSQLUserRepository(ctx, cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	return repo, func() { _ = repo.Close() }, nil
}

func translator() (*i18n.Translator, error) {
	return i18n.New(cfg.Report.Locale)
}
