// Package http exposes the calculators, login and home title as a JSON API.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fincalc/i18n"
	"fincalc/logging"
	"fincalc/service"
)

// Services are the collaborators the handlers call into.
type Services struct {
	Loans      *service.LoanService
	Funds      *service.FundService
	Auth       *service.AuthService
	Clock      *service.ClockService
	Translator *i18n.Translator
}

type RouterOptions struct {
	RateLimiter    *RateLimiter
	CORSOrigins    []string
	RequireAuth    bool
	RequestTimeout time.Duration
}

// NewRouter configures all routes and middleware.
func NewRouter(svc Services, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logging.StandardLog(),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	origins := []string{"*"}
	if len(opts.CORSOrigins) > 0 {
		origins = opts.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", Health)

	r.Group(func(r chi.Router) {
		if opts.RateLimiter != nil {
			r.Use(RateLimitMiddleware(opts.RateLimiter))
		}

		auth := NewAuthHandler(svc.Auth)
		r.Post("/auth/register", auth.Register)
		r.Post("/auth/login", auth.Login)
		r.Post("/auth/logout", auth.Logout)

		r.Group(func(r chi.Router) {
			if opts.RequireAuth {
				r.Use(func(next http.Handler) http.Handler {
					return RequireSession(svc.Auth, next)
				})
			}

			home := NewHomeHandler(svc.Clock, svc.Translator)
			r.Get("/home", home.Home)

			loans := NewLoanHandler(svc.Loans)
			r.Post("/loan/equal-installment", loans.EqualInstallment)
			r.Post("/loan/equal-principal", loans.EqualPrincipal)

			funds := NewFundHandler(svc.Funds)
			r.Post("/fund/yield", funds.Yield)
		})
	})

	return r
}
