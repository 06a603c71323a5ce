package repository

import "time"

// CacheRepository stores short-lived string values. A zero ttl keeps the
// value until it is overwritten or deleted.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
	Delete(key string) error
}
