package rpmreq

import "github.com/open-edge-platform/pkgcloser/internal/rpmver"

// family buckets an operator into less-than (-1), equals (0), or
// greater-than (1), so the Equal-comparison branch of Satisfies can ask
// whether two operators "point the same way".
func family(op Op) int {
	switch op {
	case LT, LE:
		return -1
	case GT, GE:
		return 1
	default:
		return 0
	}
}

// Satisfies reports whether provide (a Provides clause) satisfies require (a
// Requires clause): a provider-side / requirer-side range-overlap test.
//
// Names must match exactly. If either side carries no version expression,
// the requirement is trivially satisfied. Otherwise the empty-release
// special case applies first — a clause of the form "thing = 1.0" (no
// release) matches any release of version 1.0 on the other side — and
// failing that, the two EVRs are compared and the operators checked for
// overlap.
func Satisfies(provide, require Requirement) bool {
	if provide.Name != require.Name {
		return false
	}
	if provide.Expr == nil || require.Expr == nil {
		return true
	}

	evrP, evrR := provide.Expr.EVR, require.Expr.EVR
	opP, opR := provide.Expr.Op, require.Expr.Op

	if evrP.EpochOrZero() == evrR.EpochOrZero() && evrP.Version == evrR.Version {
		if opP == EQ && evrP.Release == "" {
			return true
		}
		if opR == EQ && evrR.Release == "" {
			return true
		}
	}

	switch rpmver.Compare(evrP, evrR) {
	case rpmver.Less:
		return opP == GT || opP == GE || opR == LT || opR == LE
	case rpmver.Greater:
		return opP == LT || opP == LE || opR == GT || opR == GE
	default: // Equal
		return family(opP) == family(opR)
	}
}
