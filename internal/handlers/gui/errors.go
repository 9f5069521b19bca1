package gui

// HandlerError is a custom error type for GUI handler errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         HandlerError = "config cannot be nil"
	ErrNilDie            HandlerError = "die cannot be nil"
	ErrNilServiceFactory HandlerError = "service factory cannot be nil"
	ErrGUIUnavailable    HandlerError = "graphical mode requires building with the 'ebiten' tag"
)
