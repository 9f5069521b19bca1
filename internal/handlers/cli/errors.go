package cli

// HandlerError is a custom error type for CLI handler errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      HandlerError = "config cannot be nil"
	ErrNilRollService HandlerError = "roll service cannot be nil"
	ErrNilOutput      HandlerError = "output writer cannot be nil"
)
