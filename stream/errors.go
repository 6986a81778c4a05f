package stream

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by any operation on a closed stream except
	// the idempotent Close.
	ErrClosed = errors.New("invalid operation on closed file")

	// ErrInvalid marks caller misuse: negative lengths or positions,
	// writes past a fixed extent, resizing a mapping that cannot be
	// resized. Match with errors.Is.
	ErrInvalid = errors.New("invalid")

	// ErrIO marks operating-system level failures: open, read, write,
	// map and unmap errors, and truncated compressed input.
	ErrIO = errors.New("i/o error")
)

// Invalidf builds an ErrInvalid with a formatted message.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// IOErrorf builds an ErrIO with a formatted message.
func IOErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIO, fmt.Sprintf(format, args...))
}

// WrapIO tags an underlying OS error as ErrIO, keeping it unwrappable.
func WrapIO(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
