package session

import (
	"time"

	"gridsnake/game/types"

	"github.com/pkg/errors"
)

// DefaultTickInterval is how long one simulation tick lasts.
const DefaultTickInterval = 120 * time.Millisecond

var (
	ErrGridTooSmall = errors.New("grid too small for the starting snake")
	ErrTickInterval = errors.New("tick interval must be positive")
)

// Config holds the parameters of a play session.
type Config struct {
	GridSize     int
	TickInterval time.Duration
	// Seed feeds the food placement rng. New replaces 0 with a time based seed.
	Seed uint64
}

// NewConfig returns the default configuration with a time based seed.
func NewConfig() Config {
	return Config{
		GridSize:     types.DefaultGridSize,
		TickInterval: DefaultTickInterval,
		Seed:         timeSeed(),
	}
}

func timeSeed() uint64 {
	if seed := uint64(time.Now().UnixNano()); seed != 0 {
		return seed
	}
	return 1
}

// Validate rejects configurations the simulation cannot start from.
func (c Config) Validate() error {
	if c.GridSize < types.MinGridSize {
		return errors.Wrapf(ErrGridTooSmall, "grid size %d, minimum %d", c.GridSize, types.MinGridSize)
	}
	if c.TickInterval <= 0 {
		return errors.Wrapf(ErrTickInterval, "got %v", c.TickInterval)
	}
	return nil
}
