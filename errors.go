package fixed

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the error class of the package.
// Every error returned by parsing and formatting functions belongs to it,
// which can be checked with Error.Has(err).
var Error = errs.Class("fixed")

var (
	// ErrInvalidArgument is returned when the text has no parseable digits,
	// a malformed sign or exponent, or when a format spec is malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when parsed text does not fit the base type.
	ErrOutOfRange = errors.New("out of range")
	// ErrBufferTooSmall is returned when formatted text does not fit
	// the caller-supplied buffer.
	ErrBufferTooSmall = errors.New("buffer too small")
)
