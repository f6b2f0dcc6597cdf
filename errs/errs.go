// Package errs defines the sentinel error kinds shared across the
// field, scalar, curve, codec and eddsa packages. Call sites wrap
// these with fmt.Errorf("...: %w", ...) so callers can still match
// with errors.Is after the wrapping.
package errs

import "errors"

var (
	// ErrDecodeError is returned when a string is not valid for its
	// declared encoding, or a decoded byte string has the wrong length.
	ErrDecodeError = errors.New("decode error")

	// ErrInvalidPoint is returned when a compressed point has y >= p
	// or has no valid x-recovery root. An encoded point of the wrong
	// length is reported as ErrDecodeError.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrInvalidSignature is returned when signature bytes are
	// malformed (unparseable R, or s >= L). An encoded signature of
	// the wrong length is reported as ErrDecodeError. It is distinct
	// from a well-formed signature that simply fails verification.
	ErrInvalidSignature = errors.New("invalid signature encoding")

	// ErrInvalidScalar is returned when a scalar is out of its
	// required range.
	ErrInvalidScalar = errors.New("invalid scalar")

	// ErrInvalidKey is returned when the Montgomery ladder yields the
	// all-zero output (a low-order input).
	ErrInvalidKey = errors.New("invalid key")
)
