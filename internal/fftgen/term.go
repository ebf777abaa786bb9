package fftgen

import (
	"fmt"
	"strings"
)

// summand renders one term of a tr/ti expression. cls/val describe the
// term's own coefficient (already sign-adjusted by the caller: the B term
// of tr, for instance, is passed the class and value of -wi, not wi).
// variable is the array reference the coefficient multiplies, e.g. "xr[5]". first
// indicates this is the expression's leading term, which is rendered
// without a connective.
func summand(cls Class, val float64, variable, numFmt string, first bool) string {
	switch cls {
	case ClassPlusOne:
		if first {
			return " " + variable
		}
		return " + " + variable
	case ClassMinusOne:
		if first {
			return " -" + variable
		}
		return " - " + variable
	case ClassGeneric:
		if first {
			return " " + fmt.Sprintf(numFmt, val) + "*" + variable
		}
		if val >= 0 {
			return " + " + fmt.Sprintf(numFmt, val) + "*" + variable
		}
		return " - " + fmt.Sprintf(numFmt, -val) + "*" + variable
	default: // ClassZero
		return ""
	}
}

// buildExpr assembles a two-summand expression (the right-hand side of a
// tr or ti assignment). Each summand is included only when its cond is
// true and its class isn't ClassZero. It returns the rendered text and
// whether both summands were elided (the "trZero"/"tiZero" flags of the
// spec's constant-folding rules).
func buildExpr(
	aCls Class, aVal float64, aVar string, aCond bool,
	bCls Class, bVal float64, bVar string, bCond bool,
	numFmt string,
) (string, bool) {
	var sb strings.Builder
	first := true
	if aCond && aCls != ClassZero {
		sb.WriteString(summand(aCls, aVal, aVar, numFmt, first))
		first = false
	}
	if bCond && bCls != ClassZero {
		sb.WriteString(summand(bCls, bVal, bVar, numFmt, first))
		first = false
	}
	return sb.String(), first
}
