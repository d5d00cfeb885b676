package lineart

import "errors"

var (
	// ErrInvalidOrder is returned for fractal orders outside [0, MaxOrder].
	ErrInvalidOrder = errors.New("invalid fractal order")
	// ErrIndexOutOfRange is returned when decoding a curve index outside the
	// lattice.
	ErrIndexOutOfRange = errors.New("curve index out of range")
	// ErrDegenerateBounds is returned when a path or image frame has zero width
	// or height.
	ErrDegenerateBounds = errors.New("degenerate bounding box")
	// ErrDegenerateSegment is returned for operations that need the direction
	// of a zero-length segment.
	ErrDegenerateSegment = errors.New("degenerate segment")
	// ErrZeroLength is returned when a path has no total length to normalize by.
	ErrZeroLength = errors.New("path has zero length")
	// ErrProfileMismatch is returned when a thickness profile and its path
	// differ in length.
	ErrProfileMismatch = errors.New("thickness profile does not match path")
	// ErrInvalidConfig is returned for unusable pipeline parameters.
	ErrInvalidConfig = errors.New("invalid configuration")
)
