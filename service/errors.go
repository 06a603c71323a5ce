package service

import "errors"

var (
	// ErrInvalidInput is the single validation failure for raw form fields.
	// It never says which field was rejected.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUndefinedRate is returned when the annuity factor cannot be
	// evaluated for the periodic rate (rate <= -1 or NaN).
	ErrUndefinedRate = errors.New("periodic rate makes the annuity factor undefined")

	ErrInvalidPeriods = errors.New("number of periods must be at least 1")
	ErrTooManyPeriods = errors.New("number of periods exceeds the maximum")
	ErrOutOfRange     = errors.New("result is too large to represent")
	ErrUnknownMethod  = errors.New("unknown repayment method")

	ErrEmptyCredentials   = errors.New("username and password are required")
	ErrUserExists         = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("wrong username or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)
