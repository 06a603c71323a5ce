package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpLayer "fincalc/http"
	"fincalc/logging"
	"fincalc/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		if port > 0 {
			cfg.Server.Port = port
		}
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides server.port)")
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, closeCache, err := openCache(ctx)
	if err != nil {
		return err
	}
	defer closeCache()

	users, closeUsers, err := openUsers(ctx)
	if err != nil {
		return err
	}
	defer closeUsers()

	tr, err := translator()
	if err != nil {
		return err
	}

	clockURL := cfg.Clock.URL
	if !cfg.Clock.Enabled {
		clockURL = ""
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Services{
		Loans:      service.NewLoanService(cache, cfg.Cache.TTL),
		Funds:      service.NewFundService(cache, cfg.Cache.TTL),
		Auth:       service.NewAuthService(users, cache, cfg.Auth.SessionTTL, cfg.Auth.BcryptCost),
		Clock:      service.NewClockService(clockURL, cfg.Clock.TimeZone, cfg.Clock.Timeout),
		Translator: tr,
	}, httpLayer.RouterOptions{
		RateLimiter:    rateLimiter,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequireAuth:    cfg.Auth.Required,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Infof("API listening on http://%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Infof("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logging.Infof("Server exited")
	return nil
}
