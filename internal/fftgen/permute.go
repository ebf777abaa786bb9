package fftgen

// SwapOp is one bit-reversal swap. M/MR are the destination cell pair,
// with MR > M. MNew/MRNew are the symmetric source overrides, meaningful
// only when UseSymm is set.
type SwapOp struct {
	M, MR       int
	MNew, MRNew int
	UseSymm     bool
}

// permutationPlan is the output of the permutation planner: the direct
// symmetry assignments that must run before any swap, and the ordered
// swap list itself.
type permutationPlan struct {
	preAssign []int
	swaps     []SwapOp
}

// buildPermutation produces the ordered bit-reversal swap list for an
// n-point transform, reordered under Hermitian-symmetric source promises
// when symmIn is set.
func buildPermutation(n int, symmIn bool) permutationPlan {
	var pl permutationPlan
	touched := make(map[int]bool)

	addSwap := func(s SwapOp) {
		touched[s.M] = true
		touched[s.MR] = true
		if !s.UseSymm {
			pl.swaps = append(pl.swaps, s)
			return
		}
		// Backward scan that runs to the front of the list and keeps the
		// earliest swap that already touches one of this swap's reflected
		// source cells, so the new swap is scheduled before any of them
		// overwrites a cell it reads. A match at position 0 is treated as
		// "not found" (append); see DESIGN.md's Open Question note on
		// this bound.
		target := -1
		for j := len(pl.swaps) - 1; j >= 0; j-- {
			sw := pl.swaps[j]
			if sw.M == s.MNew || sw.MR == s.MNew || sw.M == s.MRNew || sw.MR == s.MRNew {
				target = j
			}
		}
		if target > 0 {
			pl.swaps = append(pl.swaps, SwapOp{})
			copy(pl.swaps[target+1:], pl.swaps[target:])
			pl.swaps[target] = s
			return
		}
		pl.swaps = append(pl.swaps, s)
	}

	half := n / 2
	mr := 0
	for m := 1; m < n; m++ {
		k := n
		for {
			k >>= 1
			if mr+k <= n-1 {
				break
			}
		}
		mr = (mr % k) + k
		if mr <= m {
			continue
		}

		if !symmIn {
			addSwap(SwapOp{M: m, MR: mr})
			continue
		}

		mNew, mrNew := m, mr
		if mNew > half {
			mNew = n - mNew
		}
		if mrNew > half {
			mrNew = n - mrNew
		}
		if m <= half && mr <= half {
			addSwap(SwapOp{M: m, MR: mr})
		} else {
			addSwap(SwapOp{M: m, MR: mr, MNew: mNew, MRNew: mrNew, UseSymm: true})
		}
	}

	if symmIn {
		for i := half + 1; i < n; i++ {
			if !touched[i] {
				pl.preAssign = append(pl.preAssign, i)
			}
		}
	}
	return pl
}

// emitPermutation writes the permutation block: any pre-swap symmetry
// assignments, then each swap in plan order, then a blank separator.
func emitPermutation(w *stmtWriter, n int, cfg Config, pl permutationPlan) {
	half := n / 2
	for _, i := range pl.preAssign {
		w.stmt("xr[%d] = xr[%d];", i, n-i)
		w.stmt("xi[%d] = -xi[%d];", i, n-i)
	}
	for _, s := range pl.swaps {
		if !s.UseSymm {
			w.stmt("tr = xr[%d];", s.M)
			w.stmt("xr[%d] = xr[%d];", s.M, s.MR)
			w.stmt("xr[%d] = tr;", s.MR)
			if !cfg.RealIn {
				w.stmt("ti = xi[%d];", s.M)
				w.stmt("xi[%d] = xi[%d];", s.M, s.MR)
				w.stmt("xi[%d] = ti;", s.MR)
			}
			continue
		}
		w.stmt("xr[%d] = xr[%d];", s.MR, s.MNew)
		w.stmt("xr[%d] = xr[%d];", s.M, s.MRNew)
		if !cfg.RealIn {
			if s.M <= half {
				w.stmt("xi[%d] = xi[%d];", s.MR, s.MNew)
			} else {
				w.stmt("xi[%d] = -xi[%d];", s.MR, s.MNew)
			}
			if s.MR <= half {
				w.stmt("xi[%d] = xi[%d];", s.M, s.MRNew)
			} else {
				w.stmt("xi[%d] = -xi[%d];", s.M, s.MRNew)
			}
		}
	}
	w.blank()
}
