package fftgen

import (
	"fmt"
	"math"
)

// butterflyEmitter carries the mutable nzi tracker across an entire
// butterfly stage loop.
type butterflyEmitter struct {
	cfg Config
	n   int
	nzi []bool
}

func newButterflyEmitter(norm normalized) *butterflyEmitter {
	e := &butterflyEmitter{cfg: norm.cfg, n: norm.cfg.N, nzi: make([]bool, norm.cfg.N)}
	for i := range e.nzi {
		e.nzi[i] = !norm.cfg.RealIn
	}
	return e
}

// emitButterflies runs the full m-stage Cooley-Tukey loop, emitting every
// butterfly's statements under the symbolic zero-folding discipline.
func emitButterflies(w *stmtWriter, norm normalized) {
	cfg := norm.cfg
	n := cfg.N
	e := newButterflyEmitter(norm)

	for k := 1; k < n; k *= 2 {
		istep := 2 * k
		lastStage := istep == n
		for m := 0; m < k; m++ {
			a := -math.Pi * float64(m) / float64(k)
			wiRaw := math.Sin(a)
			if cfg.Inverse {
				wiRaw = -wiRaw
			}
			wr := classify(math.Cos(a), norm.eps, norm.epsPlus, norm.epsMinus)
			wi := classify(wiRaw, norm.eps, norm.epsPlus, norm.epsMinus)

			for ii := m; ii < n; ii += istep {
				jj := ii + k
				e.emit(w, ii, jj, wr, wi, lastStage)
			}
		}
	}
}

// emit writes one butterfly's up-to-six statements: tr, ti, the jj-store,
// and the ii-accumulate, eliding each according to the twiddle
// classification and the current nzi state of ii and jj.
func (e *butterflyEmitter) emit(w *stmtWriter, ii, jj int, wr, wi Twiddle, lastStage bool) {
	cfg := e.cfg
	numFmt := cfg.NumberFormat
	xrJJ := fmt.Sprintf("xr[%d]", jj)
	xiJJ := fmt.Sprintf("xi[%d]", jj)
	xrII := fmt.Sprintf("xr[%d]", ii)
	xiII := fmt.Sprintf("xi[%d]", ii)

	trExpr, trZero := buildExpr(
		wr.Class, wr.Value, xrJJ, true,
		negated(wi.Class), -wi.Value, xiJJ, wi.Class != ClassZero && e.nzi[jj],
		numFmt,
	)
	if !trZero {
		w.stmt("tr =%s;", trExpr)
	}

	skipTi := cfg.RealOut && lastStage
	tiZero := true
	if !skipTi {
		var tiExpr string
		tiExpr, tiZero = buildExpr(
			wr.Class, wr.Value, xiJJ, wr.Class != ClassZero && e.nzi[jj],
			wi.Class, wi.Value, xrJJ, true,
			numFmt,
		)
		if !tiZero {
			w.stmt("ti =%s;", tiExpr)
		}
	}

	skipJJStore := cfg.SymmOut && lastStage && jj != e.n/2
	if !skipJJStore {
		if !trZero {
			w.stmt("%s = %s - tr;", xrJJ, xrII)
		} else {
			w.stmt("%s = %s;", xrJJ, xrII)
		}
		if !skipTi {
			switch {
			case !tiZero && e.nzi[ii]:
				w.stmt("%s = %s - ti;", xiJJ, xiII)
				e.nzi[jj] = true
			case !tiZero && !e.nzi[ii]:
				w.stmt("%s = -ti;", xiJJ)
				e.nzi[jj] = true
			case tiZero && e.nzi[ii]:
				w.stmt("%s = %s;", xiJJ, xiII)
				e.nzi[jj] = true
			case tiZero && !e.nzi[ii] && cfg.RealIn && lastStage:
				w.stmt("%s = 0.0;", xiJJ)
			}
		}
	}

	if !trZero {
		w.stmt("%s += tr;", xrII)
	}
	if !skipTi {
		switch {
		case !tiZero && e.nzi[ii]:
			w.stmt("%s += ti;", xiII)
		case !tiZero && !e.nzi[ii]:
			w.stmt("%s = ti;", xiII)
			e.nzi[ii] = true
		case tiZero && !e.nzi[ii] && cfg.RealIn && lastStage:
			w.stmt("%s = 0.0;", xiII)
		}
	}
}
