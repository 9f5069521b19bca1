package dice

import (
	"math/rand"
	"strconv"
)

// standard unicode die faces, index 0 is the one-pip face
var defaultFaces = []string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// Die is an immutable N-sided die. By default each face shows its 1-based
// index and is worth that index; explicit faces and values override the
// display label and numeric value per side.
type Die struct {
	sides  int
	faces  []string
	values []int
}

// DieConfig holds the configuration for a die
type DieConfig struct {
	// Number of sides, must be at least 2
	Sides int

	// Optional display labels, one per side
	Faces []string

	// Optional numeric values, one per side
	Values []int
}

// NewDie creates a new die, validating the configuration before any
// instance is observable
func NewDie(cfg *DieConfig) (*Die, error) {
	if cfg == nil {
		return nil, ErrTooFewSides
	}

	if cfg.Sides < 2 {
		return nil, ErrTooFewSides
	}

	if cfg.Faces != nil && len(cfg.Faces) != cfg.Sides {
		return nil, ErrFacesLength
	}

	if cfg.Values != nil && len(cfg.Values) != cfg.Sides {
		return nil, ErrValuesLength
	}

	d := &Die{
		sides: cfg.Sides,
	}

	// Copy the slices so the die stays immutable if the caller mutates
	// the config afterwards
	if cfg.Faces != nil {
		d.faces = make([]string, len(cfg.Faces))
		copy(d.faces, cfg.Faces)
	}

	if cfg.Values != nil {
		d.values = make([]int, len(cfg.Values))
		copy(d.values, cfg.Values)
	}

	return d, nil
}

// DefaultDie returns the standard 6-sided die with unicode faces ⚀..⚅
// and values 1..6
func DefaultDie() *Die {
	d, err := NewDie(&DieConfig{
		Sides:  6,
		Faces:  defaultFaces,
		Values: []int{1, 2, 3, 4, 5, 6},
	})
	if err != nil {
		// The config is hardcoded and always valid
		panic(err)
	}

	return d
}

// Sides returns the number of sides on the die
func (d *Die) Sides() int {
	return d.sides
}

// FaceFor returns the display label for the 0-based face index. If no
// faces are configured, the label is the decimal string of index+1.
// Index must be in [0, sides); out-of-range is a programming error.
func (d *Die) FaceFor(index int) string {
	if d.faces != nil {
		return d.faces[index]
	}

	return strconv.Itoa(index + 1)
}

// ValueFor returns the numeric value for the 0-based face index. If no
// values are configured, the value is index+1.
func (d *Die) ValueFor(index int) int {
	if d.values != nil {
		return d.values[index]
	}

	return index + 1
}

// FaceForValue returns the display label for the first face worth the
// given value, for rendering rolled values. The second return is false
// when no face maps to the value.
func (d *Die) FaceForValue(value int) (string, bool) {
	for i := 0; i < d.sides; i++ {
		if d.ValueFor(i) == value {
			return d.FaceFor(i), true
		}
	}

	return "", false
}

// RollIndex draws a uniformly distributed face index in [0, sides)
// using the supplied generator
func (d *Die) RollIndex(rng *rand.Rand) int {
	return rng.Intn(d.sides)
}

// Roll returns the numeric value of a single roll drawn from the
// supplied generator
func (d *Die) Roll(rng *rand.Rand) int {
	return d.ValueFor(d.RollIndex(rng))
}
