package service

import "time"

const (
	DaysPerYear        = 365     // año fijo de 365 días
	SevenDayWindow     = 7       // ventana del rendimiento anualizado
	ReturnUnit         = 10000.0 // rendimiento diario por cada 10.000
	ReportDecimals     = 4       // decimales del plan de pagos
	MinPeriods         = 1
	MaxPeriods         = 1200 // 100 años de cuotas mensuales
	DefaultSessionTTL  = 12 * time.Hour
	DefaultCacheTTL    = 10 * time.Minute
	sessionKeyPrefix   = "session:"
	loanCacheKeyPrefix = "loan:"
	fundCacheKeyPrefix = "fund:"
)
