package sim

import (
	"errors"
	"fmt"
)

// ErrBadConfig indicates a Config field outside its allowed range.
var ErrBadConfig = errors.New("sim: invalid config")

// Config holds the tunables of a simulation run.
type Config struct {
	// PoolUnits is the number of units in the pool.
	PoolUnits int

	// BlockSize is the capacity of a single unit.
	BlockSize int

	// Requests is the number of requests issued per policy run.
	Requests int

	// MinRequest and MaxRequest bound the size of an allocation request,
	// in capacity units, inclusive.
	MinRequest int
	MaxRequest int

	// DeallocOneIn makes one request in DeallocOneIn a deallocation.
	DeallocOneIn int

	// MaxCyclicOffset bounds the registry offset of a deallocation target,
	// inclusive.
	MaxCyclicOffset int

	// PIDRange bounds process IDs to [0, PIDRange).
	PIDRange int
}

// DefaultConfig returns the configuration of the reference simulation.
func DefaultConfig() Config {
	return Config{
		PoolUnits:       128,
		BlockSize:       2,
		Requests:        10000,
		MinRequest:      3,
		MaxRequest:      10,
		DeallocOneIn:    4,
		MaxCyclicOffset: 10,
		PIDRange:        1_000_000,
	}
}

// Validate reports the first field that cannot drive a simulation.
func (c Config) Validate() error {
	switch {
	case c.PoolUnits < 1:
		return fmt.Errorf("%w: pool units %d < 1", ErrBadConfig, c.PoolUnits)
	case c.BlockSize < 1:
		return fmt.Errorf("%w: block size %d < 1", ErrBadConfig, c.BlockSize)
	case c.Requests < 1:
		return fmt.Errorf("%w: requests %d < 1", ErrBadConfig, c.Requests)
	case c.MinRequest < 1:
		return fmt.Errorf("%w: min request %d < 1", ErrBadConfig, c.MinRequest)
	case c.MaxRequest < c.MinRequest:
		return fmt.Errorf("%w: max request %d < min request %d", ErrBadConfig, c.MaxRequest, c.MinRequest)
	case c.DeallocOneIn < 1:
		return fmt.Errorf("%w: dealloc one-in %d < 1", ErrBadConfig, c.DeallocOneIn)
	case c.MaxCyclicOffset < 0:
		return fmt.Errorf("%w: max cyclic offset %d < 0", ErrBadConfig, c.MaxCyclicOffset)
	case c.PIDRange < 1:
		return fmt.Errorf("%w: pid range %d < 1", ErrBadConfig, c.PIDRange)
	}
	return nil
}
