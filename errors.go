package huffpack

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// HuffError is the interface implemented by every error the huffpack packages
// return. Use [errors.Is] against the exported values below to classify them.
type HuffError interface {
	error
	WithMessage(message string) HuffError
	WithMessagef(format string, args ...any) HuffError
	Wrap(err error) HuffError
}

// baseHuffError is one of the fixed error kinds. Anything returned to callers
// is a [detailedError] with one of these at the bottom of its chain.
type baseHuffError string

const rootError = baseHuffError("")

var ErrCorruptArtifact = rootError.WithMessage("Artifact is corrupted")
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrInvalidInput = rootError.WithMessage("Invalid input")
var ErrOffsetOverflow = rootError.WithMessage("Decode table offset out of range")
var ErrSizeMismatch = rootError.WithMessage("Encoded size does not match measured size")
var ErrUnsupportedFormat = rootError.WithMessage("Unsupported artifact format")

func (e baseHuffError) Error() string {
	return string(e)
}

// WithMessage creates a new error kind. The message replaces the (empty)
// message of the root so the exported errors print cleanly.
func (e baseHuffError) WithMessage(message string) HuffError {
	return detailedError{message: message, parent: e}
}

func (e baseHuffError) WithMessagef(format string, args ...any) HuffError {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

func (e baseHuffError) Wrap(err error) HuffError {
	return wrapError(e, err)
}

// -----------------------------------------------------------------------------

// detailedError adds context to a parent error. errors.Is matches every error
// in its parent chain, plus any error it wraps.
type detailedError struct {
	message string
	parent  error
}

func (e detailedError) Error() string {
	return e.message
}

// WithMessage appends a detail to this error's message, after a colon.
func (e detailedError) WithMessage(message string) HuffError {
	return detailedError{
		message: fmt.Sprintf("%s: %s", e.message, message),
		parent:  e,
	}
}

func (e detailedError) WithMessagef(format string, args ...any) HuffError {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// Wrap attaches a lower-level error, typically from I/O. The result matches
// both this error and err.
func (e detailedError) Wrap(err error) HuffError {
	return wrapError(e, err)
}

func (e detailedError) Unwrap() error {
	return e.parent
}

func wrapError(kind HuffError, err error) HuffError {
	return detailedError{
		message: fmt.Sprintf("%s: %s", kind.Error(), err.Error()),
		parent:  multierror.Append(kind, err),
	}
}
