// Package fftgen implements the four-stage FFT/IFFT code generator: it
// normalizes a Config, plans the bit-reversal permutation, emits the
// constant-folded butterfly statements, and assembles the result. It has
// no knowledge of flags, processes, or output files — Generate writes a
// self-contained fragment to whatever io.Writer its caller supplies.
package fftgen

import "io"

// Generate writes the loop-unrolled FFT/IFFT fragment for cfg to w. The
// fragment declares nothing; it assumes the caller's surrounding code
// defines xr, xi, tr, and ti.
func Generate(cfg Config, w io.Writer) error {
	norm, err := normalize(cfg)
	if err != nil {
		return err
	}
	cfg = norm.cfg

	sw := &stmtWriter{w: w, indent: cfg.Indent}
	if cfg.License {
		sw.raw(licenseBanner)
	}

	if cfg.N == 1 {
		return sw.err
	}

	pl := buildPermutation(cfg.N, cfg.SymmIn)
	emitPermutation(sw, cfg.N, cfg, pl)
	emitButterflies(sw, norm)
	return sw.err
}
