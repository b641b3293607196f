// Package rpmreq implements parsing of RPM-style requirement/provides
// expressions ("name [op EVR]") and the satisfies predicate that decides
// whether a Provides clause covers a Requires clause.
package rpmreq

import (
	"fmt"
	"strings"

	"github.com/open-edge-platform/pkgcloser/internal/rpmver"
)

// Op is one of the five RPM comparison operators.
type Op int

const (
	GE Op = iota
	GT
	EQ
	LE
	LT
)

func (o Op) String() string {
	switch o {
	case GE:
		return ">="
	case GT:
		return ">"
	case EQ:
		return "="
	case LE:
		return "<="
	case LT:
		return "<"
	default:
		return "?"
	}
}

func parseOp(s string) (Op, bool) {
	switch s {
	case ">=":
		return GE, true
	case ">":
		return GT, true
	case "=":
		return EQ, true
	case "<=":
		return LE, true
	case "<":
		return LT, true
	}
	return 0, false
}

// Matches reports whether this operator accepts the given Ordering of
// provider-EVR-compared-to-required-EVR (or vice versa, depending on which
// side o belongs to): GE/LE also accept Equal, EQ only Equal, GT/LT are
// strict.
func (o Op) Matches(c rpmver.Ordering) bool {
	switch o {
	case GE:
		return c == rpmver.Greater || c == rpmver.Equal
	case GT:
		return c == rpmver.Greater
	case EQ:
		return c == rpmver.Equal
	case LE:
		return c == rpmver.Less || c == rpmver.Equal
	case LT:
		return c == rpmver.Less
	}
	return false
}

// Expr pairs an operator with the EVR it constrains against.
type Expr struct {
	Op  Op
	EVR rpmver.EVR
}

// Requirement is "name" alone (a wildcard any provision of the same name
// satisfies) or "name op evr".
type Requirement struct {
	Name string
	Expr *Expr
}

// Parse parses a whitespace-separated requirement string: "name", or
// "name OP EVR". Any further tokens are a parse error (ExtraData).
func Parse(s string) (Requirement, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Requirement{}, &ParseError{Kind: BadOperator, Input: s, Msg: "empty requirement string"}
	}

	name := fields[0]
	if len(fields) == 1 {
		return Requirement{Name: name}, nil
	}

	if len(fields) < 3 {
		return Requirement{}, &ParseError{Kind: BadOperator, Input: s, Msg: "operator without version"}
	}

	op, ok := parseOp(fields[1])
	if !ok {
		return Requirement{}, &ParseError{Kind: BadOperator, Input: s, Msg: fmt.Sprintf("unrecognized operator %q", fields[1])}
	}

	evr, err := rpmver.Parse(fields[2])
	if err != nil {
		return Requirement{}, &ParseError{Kind: BadOperator, Input: s, Msg: err.Error()}
	}

	if len(fields) > 3 {
		return Requirement{}, &ParseError{Kind: ExtraData, Input: s, Msg: "trailing tokens after version"}
	}

	return Requirement{Name: name, Expr: &Expr{Op: op, EVR: evr}}, nil
}

// String renders the requirement back to "name" or "name op evr" form.
func (r Requirement) String() string {
	if r.Expr == nil {
		return r.Name
	}
	return fmt.Sprintf("%s %s %s", r.Name, r.Expr.Op, r.Expr.EVR)
}
