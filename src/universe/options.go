package universe

import (
	"errors"
	"fmt"
	"time"
)

//Options represents the Universe's configurable options
type Options struct {
	Size             int           //side length of the square field
	Interval         time.Duration //delay between two generations while running
	MaxSteps         int           //the driver stops the run at this generation, 0 means unlimited
	SeedCells        int           //cells activated per attempt by SeedRandom when no count is given
	SeedAttempts     int           //seed-then-step rounds done by SeedRandom
	AutoReseedPeriod int           //auto mode reseeds every AutoReseedPeriod generations
	AutoReseedCells  int           //cells activated per attempt by the auto mode reseed
	RandSeed         int64         //random generator seed, 0 means time based
}

//default options
const (
	DefSize             = 40
	DefInterval         = time.Millisecond * 500
	DefSeedCells        = 100
	DefSeedAttempts     = 10
	DefAutoReseedPeriod = 100
	DefAutoReseedCells  = 50

	//recommended field bounds, enforced by Validate and never by the engine itself
	MinSize = 10
	MaxSize = 200
)

var DefaultOptions = Options{
	Size:             DefSize,
	Interval:         DefInterval,
	SeedCells:        DefSeedCells,
	SeedAttempts:     DefSeedAttempts,
	AutoReseedPeriod: DefAutoReseedPeriod,
	AutoReseedCells:  DefAutoReseedCells,
}

var (
	ErrInvalidSize     = errors.New("invalid field size")
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidMaxSteps = errors.New("invalid max steps")
	ErrInvalidSeeding  = errors.New("invalid seeding options")
)

//Validate checks the options before the universe is created
func (o Options) Validate() error {
	if o.Size < MinSize || o.Size > MaxSize {
		return fmt.Errorf("%w: %d, expected %d..%d", ErrInvalidSize, o.Size, MinSize, MaxSize)
	}
	if o.Interval <= 0 {
		return fmt.Errorf("%w: %v, expected a positive duration", ErrInvalidInterval, o.Interval)
	}
	if o.MaxSteps < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidMaxSteps, o.MaxSteps)
	}
	if o.SeedCells < 0 || o.AutoReseedCells < 0 || o.SeedAttempts < 0 {
		return fmt.Errorf("%w: cell counts must not be negative", ErrInvalidSeeding)
	}
	//every reseed steps SeedAttempts times, a shorter period would reseed forever
	if o.AutoReseedPeriod > 0 && o.AutoReseedPeriod <= o.SeedAttempts {
		return fmt.Errorf("%w: reseed period %d must exceed %d seeding attempts",
			ErrInvalidSeeding, o.AutoReseedPeriod, o.SeedAttempts)
	}
	return nil
}

//withDefaults fills the zero-valued fields with the defaults
func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 1
	}
	if o.Interval <= 0 {
		o.Interval = DefInterval
	}
	if o.SeedCells <= 0 {
		o.SeedCells = DefSeedCells
	}
	if o.SeedAttempts <= 0 {
		o.SeedAttempts = DefSeedAttempts
	}
	if o.AutoReseedPeriod <= 0 {
		o.AutoReseedPeriod = DefAutoReseedPeriod
	}
	if o.AutoReseedCells <= 0 {
		o.AutoReseedCells = DefAutoReseedCells
	}
	if o.AutoReseedPeriod <= o.SeedAttempts {
		o.AutoReseedPeriod = o.SeedAttempts + 1
	}
	return o
}
