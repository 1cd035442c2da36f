package redis

import (
	"time"

	"github.com/turnos-app/turnos_backend/config"
)

// Config holds Redis connection settings
type Config struct {
	Addr     string
	DB       int
	Username string
	Password string

	// Connection pool settings
	PoolSize     int
	MinIdleConns int

	// Timeouts
	DialTimeoutSeconds  int
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		Addr:                "localhost:6379",
		DB:                  0,
		PoolSize:            10,
		MinIdleConns:        2,
		DialTimeoutSeconds:  5,
		ReadTimeoutSeconds:  3,
		WriteTimeoutSeconds: 3,
	}
}

// DialTimeout returns the dial timeout as a duration
func (c Config) DialTimeout() time.Duration {
	if c.DialTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.DialTimeoutSeconds) * time.Second
}

// ReadTimeout returns the read timeout as a duration
func (c Config) ReadTimeout() time.Duration {
	if c.ReadTimeoutSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration
func (c Config) WriteTimeout() time.Duration {
	if c.WriteTimeoutSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.RedisConfig to package Config
func FromCentralConfig(c config.RedisConfig) Config {
	defaults := DefaultConfig()

	cfg := Config{
		Addr:     c.Addr,
		DB:       c.DB,
		Username: c.Username,
		Password: c.Password,
	}

	cfg.PoolSize = c.PoolSize
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = defaults.PoolSize
	}

	cfg.MinIdleConns = c.MinIdleConns
	if cfg.MinIdleConns <= 0 {
		cfg.MinIdleConns = defaults.MinIdleConns
	}

	cfg.DialTimeoutSeconds = c.DialTimeoutSeconds
	if cfg.DialTimeoutSeconds <= 0 {
		cfg.DialTimeoutSeconds = defaults.DialTimeoutSeconds
	}

	cfg.ReadTimeoutSeconds = c.ReadTimeoutSeconds
	if cfg.ReadTimeoutSeconds <= 0 {
		cfg.ReadTimeoutSeconds = defaults.ReadTimeoutSeconds
	}

	cfg.WriteTimeoutSeconds = c.WriteTimeoutSeconds
	if cfg.WriteTimeoutSeconds <= 0 {
		cfg.WriteTimeoutSeconds = defaults.WriteTimeoutSeconds
	}

	return cfg
}
