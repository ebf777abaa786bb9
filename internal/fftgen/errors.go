// errors.go defines the sentinel errors produced during configuration
// normalization.

package fftgen

import "errors"

var (
	// ErrInvalidSize indicates N was not a positive power of two.
	ErrInvalidSize = errors.New("fftgen: n must be a positive power of two")

	// ErrSizeTooLarge indicates N exceeded MaxN. The emitted fragment's
	// size is linear in n*log2(n); this is the resource-error case, not
	// an argument-error case, since the value is otherwise well-formed.
	ErrSizeTooLarge = errors.New("fftgen: n exceeds the maximum supported transform size")
)
