package fhash

import (
	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
)

// DefaultCapacity is the number of buckets a table gets when nothing else is configured.
const DefaultCapacity = 60

// CapacityEnv names the environment variable read by ConfigFromEnv.
const CapacityEnv = "FHASH_CAPACITY"

// Config holds the construction-time parameters shared by every table type
type Config struct {
	// Capacity is the fixed number of buckets. It never changes after construction.
	Capacity int
}

// DefaultConfig returns a Config with DefaultCapacity
func DefaultConfig() Config {
	return Config{Capacity: DefaultCapacity}
}

// ConfigFromEnv reads the capacity from FHASH_CAPACITY, falling back to DefaultCapacity
func ConfigFromEnv() Config {
	return Config{Capacity: env.Int(CapacityEnv, DefaultCapacity)}
}

// Validate reports whether the config can back a table
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return errors.WithMessagef(ErrInvalidCapacity, "capacity %d", c.Capacity)
	}
	return nil
}
