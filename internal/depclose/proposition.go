package depclose

import (
	"fmt"
	"sort"

	"github.com/open-edge-platform/pkgcloser/internal/rpmver"
)

// Kind identifies which of the three fact kinds a Proposition carries.
// Declaration order fixes the sort order: Obsoletes < Provides < Requires.
type Kind int

const (
	ObsoletesKind Kind = iota
	ProvidesKind
	RequiresKind
)

// Proposition is a fact emitted by closure. Depending on Kind, only the
// fields relevant to that variant are meaningful:
//   - Obsoletes: Left is the obsoleting name, Right the obsoleted expression.
//   - Provides:  NEVRA is the provider, Right the provided thing.
//   - Requires:  NEVRA is the requirer, Right the required expression.
type Proposition struct {
	Kind  Kind
	Left  string
	NEVRA NEVRA
	Right string
}

// Obsoletes builds an Obsoletes(obsoletingName, obsoletedExpr) proposition.
func Obsoletes(obsoletingName, obsoletedExpr string) Proposition {
	return Proposition{Kind: ObsoletesKind, Left: obsoletingName, Right: obsoletedExpr}
}

// Provides builds a Provides(providerNEVRA, providedThing) proposition.
func Provides(provider NEVRA, providedThing string) Proposition {
	return Proposition{Kind: ProvidesKind, NEVRA: provider, Right: providedThing}
}

// Requires builds a Requires(requirerNEVRA, requiredExpr) proposition.
func Requires(requirer NEVRA, requiredExpr string) Proposition {
	return Proposition{Kind: RequiresKind, NEVRA: requirer, Right: requiredExpr}
}

// String renders the stable, human-readable line per the external
// interfaces' output format.
func (p Proposition) String() string {
	switch p.Kind {
	case ObsoletesKind:
		return fmt.Sprintf("%s obsoletes %s", p.Left, p.Right)
	case ProvidesKind:
		return fmt.Sprintf("%s provides %s", p.NEVRA, p.Right)
	case RequiresKind:
		return fmt.Sprintf("%s requires %s", p.NEVRA, p.Right)
	default:
		return fmt.Sprintf("<unknown proposition kind %d>", p.Kind)
	}
}

// dedupeKey identifies structural equality for set insertion.
func (p Proposition) dedupeKey() string {
	return fmt.Sprintf("%d\x00%s\x00%s\x00%s", p.Kind, p.Left, nevraKey(p.NEVRA), p.Right)
}

// less orders two propositions first by Kind, then lexicographically by
// the variant's string fields, with NEVRA ordered by Compare.
func less(pa, pb Proposition) bool {
	if pa.Kind != pb.Kind {
		return pa.Kind < pb.Kind
	}
	switch pa.Kind {
	case ObsoletesKind:
		if pa.Left != pb.Left {
			return pa.Left < pb.Left
		}
		return pa.Right < pb.Right
	default: // ProvidesKind, RequiresKind
		if c := Compare(pa.NEVRA, pb.NEVRA); c != rpmver.Equal {
			return c == rpmver.Less
		}
		return pa.Right < pb.Right
	}
}

// sortPropositions returns props sorted per the PropositionModel's ordering
// guarantee.
func sortPropositions(props []Proposition) {
	sort.Slice(props, func(i, j int) bool { return less(props[i], props[j]) })
}
