package roll

// ServiceError is a custom error type for roll service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        ServiceError = "config cannot be nil"
	ErrNilDiceRoller    ServiceError = "dice roller cannot be nil"
	ErrNilClock         ServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator ServiceError = "UUID generator cannot be nil"
	ErrNilInput         ServiceError = "input cannot be nil"
	ErrEmptyCounts      ServiceError = "at least one batch count must be provided"
)
