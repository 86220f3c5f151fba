package stayauth

import (
	"errors"
	"strings"
)

// Config defines the tunable surface of the session core.
//
// Config instances are intended to be set up during initialization and then
// treated as immutable.
type Config struct {
	Storage StorageConfig
	Guard   GuardConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig controls the persisted key layout.
type StorageConfig struct {
	// RedisPrefix namespaces the two session keys, e.g. "stayauth" yields
	// "stayauth:user" and "stayauth:token".
	RedisPrefix string
}

/*
====================================
GUARD CONFIG
====================================
*/

// GuardConfig carries the two redirect targets of the route guard. The
// guard package receives them from the routing layer; they live here so one
// Config describes the whole core.
type GuardConfig struct {
	LoginPath string
	HomePath  string
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events instead of blocking mutating operations when
	// the buffer is saturated.
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			RedisPrefix: "stayauth",
		},
		Guard: GuardConfig{
			LoginPath: "/login",
			HomePath:  "/",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if c.Storage.RedisPrefix == "" {
		return errors.New("Storage RedisPrefix must not be empty")
	}
	if strings.ContainsAny(c.Storage.RedisPrefix, " \t\n") {
		return errors.New("Storage RedisPrefix must not contain whitespace")
	}
	if !strings.HasPrefix(c.Guard.LoginPath, "/") {
		return errors.New("Guard LoginPath must be an absolute path")
	}
	if !strings.HasPrefix(c.Guard.HomePath, "/") {
		return errors.New("Guard HomePath must be an absolute path")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("Audit BufferSize must not be negative")
	}
	return nil
}
