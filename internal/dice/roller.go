package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/mobinyousefi-cs/dice-roller/internal/dice Roller

// Roller provides dice rolling functionality. It pairs a single die with
// a seeded pseudo-random generator, so implementations are not safe for
// concurrent use; callers that share a Roller must serialize calls.
type Roller interface {
	// Roll returns the values of times sequential rolls
	Roll(times int) ([]int, error)

	// RollSum returns the sum of times sequential rolls
	RollSum(times int) (int, error)

	// RollSequence rolls each batch in counts order, returning the
	// single value for 1-sized batches and the batch sum otherwise
	RollSequence(counts []int) ([]int, error)

	// Die returns the die this roller rolls
	Die() *Die
}

// Config for dice roller
type Config struct {
	// Die to roll, defaults to the standard 6-sided die
	Die *Die

	// Seed for the generator, used only when Seeded is true
	Seed int64

	// Seeded selects a deterministic generator. Zero is a valid seed,
	// so the flag is explicit rather than inferred from Seed.
	Seeded bool
}

// roller implements the Roller interface
type roller struct {
	die    *Die
	random *rand.Rand
}

// New creates a new dice roller. Two rollers built with the same seed
// and die configuration produce identical roll sequences.
func New(cfg *Config) *roller {
	die := DefaultDie()
	var seed int64

	if cfg != nil {
		if cfg.Die != nil {
			die = cfg.Die
		}
		if cfg.Seeded {
			seed = cfg.Seed
		} else {
			seed = time.Now().UnixNano()
		}
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &roller{
		die:    die,
		random: random,
	}
}

// Die returns the die this roller rolls
func (r *roller) Die() *Die {
	return r.die
}

// Roll returns the values of times sequential rolls. A times below 1 is
// rejected before any draw, leaving the generator state unchanged.
func (r *roller) Roll(times int) ([]int, error) {
	if times < 1 {
		return nil, ErrInvalidTimes
	}

	values := make([]int, times)
	for i := range values {
		values[i] = r.die.Roll(r.random)
	}

	return values, nil
}

// RollSum returns the sum of times sequential rolls
func (r *roller) RollSum(times int) (int, error) {
	values, err := r.Roll(times)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	return sum, nil
}

// RollSequence rolls each batch in counts order. Every count is
// validated up front so a rejected call performs no draws at all.
func (r *roller) RollSequence(counts []int) ([]int, error) {
	for _, count := range counts {
		if count < 1 {
			return nil, ErrInvalidTimes
		}
	}

	results := make([]int, 0, len(counts))
	for _, count := range counts {
		if count == 1 {
			values, err := r.Roll(1)
			if err != nil {
				return nil, err
			}
			results = append(results, values[0])
			continue
		}

		sum, err := r.RollSum(count)
		if err != nil {
			return nil, err
		}
		results = append(results, sum)
	}

	return results, nil
}
