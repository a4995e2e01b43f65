package quadtree

import "github.com/pkg/errors"

const (
	DefaultCapacity = 4
	DefaultMaxDepth = 32
)

// Config holds tree parameters.
type Config struct {
	Capacity int // points a leaf holds before it splits, default 4
	MaxDepth int // nodes at this depth never split and grow past Capacity, default 32
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		MaxDepth: DefaultMaxDepth,
	}
}

// OrDefault returns DefaultConfig if c is nil, otherwise a copy of c with
// zero fields set to their defaults. c itself is not modified.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	out := *c
	if out.Capacity == 0 {
		out.Capacity = DefaultCapacity
	}
	if out.MaxDepth == 0 {
		out.MaxDepth = DefaultMaxDepth
	}
	return &out
}

func (c *Config) validate() error {
	if c.Capacity < 1 {
		return errors.Wrapf(ErrInvalidCapacity, "capacity %d", c.Capacity)
	}
	if c.MaxDepth < 0 {
		return errors.Wrapf(ErrInvalidMaxDepth, "max depth %d", c.MaxDepth)
	}
	return nil
}
