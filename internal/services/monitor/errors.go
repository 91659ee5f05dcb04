package monitor

// MonitorError is a custom error type for monitor-related errors
type MonitorError string

// Error implements the error interface
func (e MonitorError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      MonitorError = "config cannot be nil"
	ErrNilGameService MonitorError = "game service cannot be nil"
	ErrNilClock       MonitorError = "clock cannot be nil"
)
