package depclose

import "fmt"

// ProviderRef is one hit returned by providers_of_name / groups_containing_file:
// a group id, plus the version-constrained expression the provider declared
// (if any — a bare provides entry carries none).
type ProviderRef struct {
	GroupID int64
	Expr    string // empty when the provider declared no version expression
	HasExpr bool
}

// ObsoleteRef is one hit returned by obsoletes_of_group: the obsoleting
// group's name, and the expression describing what it obsoletes.
type ObsoleteRef struct {
	Name string
	Expr string
}

// CatalogGateway is the narrow read-only surface the closer needs. Every
// operation is pure with respect to the catalog. Implementations return an
// empty slice (not an error) when there is simply no match; a non-nil error
// signals a genuine catalog failure for that one call, which the closer
// logs and skips rather than aborting on.
type CatalogGateway interface {
	// ProvidersOfName returns provider references for thing, a token that
	// may carry a version tail.
	ProvidersOfName(thing string) ([]ProviderRef, error)

	// GroupsContainingFile returns the group ids of groups that own path,
	// an absolute filesystem path.
	GroupsContainingFile(path string) ([]int64, error)

	// RequirementsOfGroup returns requirement expression strings declared
	// by groupID, excluding any beginning with "rpmlib".
	RequirementsOfGroup(groupID int64) ([]string, error)

	// ObsoletesOfGroup returns what groupID obsoletes.
	ObsoletesOfGroup(groupID int64) ([]ObsoleteRef, error)

	// NEVRAOfGroup returns the NEVRA built from groupID's key-value
	// attributes, or ok=false if required attributes are missing.
	NEVRAOfGroup(groupID int64) (nevra NEVRA, ok bool, err error)
}

// CatalogError wraps an upstream gateway failure encountered while
// expanding a single requirement string or group.
type CatalogError struct {
	Op  string
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("depclose: catalog error during %s: %v", e.Op, e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }

// InconsistentGroup reports a group missing the attributes required to
// build a NEVRA (name, version, release, arch).
type InconsistentGroup struct {
	GroupID int64
}

func (e *InconsistentGroup) Error() string {
	return fmt.Sprintf("depclose: group %d is missing required NEVRA attributes", e.GroupID)
}
