package dice

// DiceError is a custom error type for dice configuration and roll errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTooFewSides  DiceError = "a die must have at least 2 sides"
	ErrFacesLength  DiceError = "faces length must match sides"
	ErrValuesLength DiceError = "values length must match sides"
	ErrInvalidTimes DiceError = "times must be >= 1"
)
