package modulino

import "fmt"

// Common error values shared by the module drivers. Transport failures are
// not represented here; they are wrapped with %w by every register operation
// so callers can unwrap down to the adapter error.
var (
	ErrDeviceNotFound   = fmt.Errorf("device not found on I2C bus")
	ErrInvalidParameter = fmt.Errorf("invalid parameter value")
	ErrOutOfRange       = fmt.Errorf("value out of range")
	ErrTimeout          = fmt.Errorf("operation timed out")
	ErrDataError        = fmt.Errorf("data transmission error")
)
