package columnio

import (
	"github.com/hupe1980/columnio/stream"
)

// Error kinds re-exported from package stream so callers matching with
// errors.Is need only one import.
var (
	// ErrClosed indicates an operation on a closed stream.
	ErrClosed = stream.ErrClosed
	// ErrInvalid indicates an invalid argument or stream state.
	ErrInvalid = stream.ErrInvalid
	// ErrIO indicates a failure in the underlying I/O layer.
	ErrIO = stream.ErrIO
)
