package city

import "errors"

// Sentinel errors returned by the city package.
var (
	// ErrNoCities indicates that an operation requiring at least one city
	// received an empty slice.
	ErrNoCities = errors.New("city: city set is empty")

	// ErrNegativeCount indicates that a negative instance size was requested.
	ErrNegativeCount = errors.New("city: count must be non-negative")
)

// City is an immutable 2-D coordinate. Cities are identified by their
// index in a fixed ordered slice; the struct itself carries no identity.
type City struct {
	X float64 // horizontal coordinate
	Y float64 // vertical coordinate
}
