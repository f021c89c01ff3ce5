package lwwset

import (
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/google/uuid"
)

// Option configures a Replica on creation.
// Return an error to reject an invalid option value.
type Option func(*Config) error

// Config holds runtime configuration for a Replica.
// Users typically set it via Option helpers.
type Config struct {
	ReplicaID string
	Clock     Clock
	Logger    log.Logger
	Metrics   *Metrics
}

func defaultConfig() Config {
	return Config{}
}

func (c *Config) finalize() error {
	if c.ReplicaID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("lwwset: generate replica id: %w", err)
		}
		c.ReplicaID = id.String()
	}
	if c.Clock == nil {
		c.Clock = NewLamportClock(0)
	}
	if c.Logger == nil {
		c.Logger = log.NewNopLogger()
	}
	if c.Metrics == nil {
		c.Metrics = NewDiscardMetrics()
	}
	return nil
}

// WithReplicaID sets a stable replica identifier used in logs.
// If omitted, a random UUID is generated.
func WithReplicaID(id string) Option {
	return func(c *Config) error {
		if id == "" {
			return fmt.Errorf("lwwset: replica id cannot be empty")
		}
		c.ReplicaID = id
		return nil
	}
}

// WithClock sets the timestamp source for local writes.
// The default is a LamportClock starting at zero.
func WithClock(clock Clock) Option {
	return func(c *Config) error {
		if clock == nil {
			return fmt.Errorf("lwwset: clock cannot be nil")
		}
		c.Clock = clock
		return nil
	}
}

// WithLogger sets the logger used for write and merge events.
func WithLogger(logger log.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return fmt.Errorf("lwwset: logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets the counters updated by the Replica.
// Nil counters inside m are replaced with discarding ones.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) error {
		if m == nil {
			return fmt.Errorf("lwwset: metrics cannot be nil")
		}
		c.Metrics = m.withDefaults()
		return nil
	}
}
