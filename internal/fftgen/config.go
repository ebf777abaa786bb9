package fftgen

import (
	"fmt"
	"math"
	"math/bits"
)

// DefaultNumberFormat is applied when Config.NumberFormat is empty.
const DefaultNumberFormat = "%21.14e"

// MaxN bounds the transform size this generator will attempt: butterfly counts
// and emitted-fragment size grow as n*log2(n), and a generator invoked with
// an unbounded n is treated as a resource error rather than an argument
// error.
const MaxN = 1 << 20

// Config is the immutable input to Generate. It mirrors the flag surface
// of cmd/fftgen one-to-one; see Config's fields for the semantics each
// flag controls.
type Config struct {
	// N is the transform size. Must be a positive power of two.
	N int

	// Inverse negates every twiddle factor's imaginary component, turning
	// the emitted fragment into an IFFT.
	Inverse bool

	// RealIn asserts xi[i] == 0 for all i at entry, letting the emitter
	// elide xi reads and stores until a store is proven non-zero.
	RealIn bool

	// RealOut suppresses every xi write in the final butterfly stage.
	RealOut bool

	// SymmIn asserts the input is Hermitian-symmetric about index N/2.
	SymmIn bool

	// SymmOut suppresses writes to result indices i > N/2, except N/2
	// itself, in the final stage.
	SymmOut bool

	// License prepends the GPL-3 banner to the emitted fragment.
	License bool

	// NumberFormat is the printf-style verb used for generic real
	// constants. Defaults to DefaultNumberFormat.
	NumberFormat string

	// Indent is prefixed to every emitted statement line.
	Indent string
}

// normalized holds a Config together with the quantities derived from it
// during the "configuration normalization" stage: the stage exponent and
// the classifier thresholds for this transform size.
type normalized struct {
	cfg      Config
	m        int
	eps      float64
	epsPlus  float64
	epsMinus float64
}

// normalize validates cfg and derives m, eps, epsPlus, epsMinus.
func normalize(cfg Config) (normalized, error) {
	if cfg.N < 1 || bits.OnesCount(uint(cfg.N)) != 1 {
		return normalized{}, fmt.Errorf("%w: got %d", ErrInvalidSize, cfg.N)
	}
	if cfg.N > MaxN {
		return normalized{}, fmt.Errorf("%w: got %d, max %d", ErrSizeTooLarge, cfg.N, MaxN)
	}
	if cfg.NumberFormat == "" {
		cfg.NumberFormat = DefaultNumberFormat
	}

	n := normalized{cfg: cfg, m: bits.TrailingZeros(uint(cfg.N))}
	if cfg.N >= 2 {
		angle := math.Pi / float64(cfg.N/2)
		n.eps = 0.5 * math.Sin(angle)
		n.epsPlus = 1 - 0.5*(1-math.Cos(angle))
		n.epsMinus = -n.epsPlus
	}
	return n, nil
}
