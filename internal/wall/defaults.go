package wall

import "time"

const (
	// DefaultColumns is the initial wall width.
	DefaultColumns = 16
	// DefaultRows is the initial wall height.
	DefaultRows = 16

	// MinDimension and MaxDimension bound the settings steppers. The wall
	// itself accepts any non-negative size.
	MinDimension = 1
	MaxDimension = 50

	// DefaultThrottle is the window used for resize and dimension changes.
	DefaultThrottle = 500 * time.Millisecond
)
