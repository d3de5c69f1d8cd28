package geolocate

import "errors"

// Configuration errors: bad inputs caught before any computation runs.
var (
	ErrInvalidDimensions = errors.New("sensor and image dimensions must be strictly positive")
	ErrInvalidAltitude   = errors.New("camera altitude must be strictly positive")
)

// Geometry errors: inputs that make the projection itself undefined.
// Retrying with the same inputs cannot succeed.
var (
	ErrSingularIntrinsics = errors.New("intrinsics matrix is not invertible")
	ErrHorizon            = errors.New("object at or beyond the horizon")
)
