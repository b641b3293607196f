// Package memcat is an in-memory depclose.CatalogGateway fixture, used in
// tests in place of a real relational catalog.
package memcat

import (
	"sort"
	"strings"

	"github.com/open-edge-platform/pkgcloser/internal/depclose"
)

// Group is one catalog entry: a package's NEVRA plus its declared
// capability and requirement expressions.
type Group struct {
	ID           int64
	NEVRA        depclose.NEVRA
	Provides     []string // version expressions, e.g. "libfoo = 1.0-1"; bare names allowed
	Requires     []string
	Obsoletes    []string // version expressions of what this group obsoletes
	Files        []string // absolute paths this group owns
	missingNEVRA bool      // test hook: force NEVRAOfGroup to report !ok
}

// Catalog is a simple slice-backed gateway built for tests: no indexes, just
// linear scans, which is fine at fixture scale.
type Catalog struct {
	Groups []*Group
}

// New returns an empty catalog ready for groups to be added.
func New() *Catalog {
	return &Catalog{}
}

// AddGroup appends g to the catalog and returns it for further mutation.
func (c *Catalog) AddGroup(g Group) *Group {
	stored := g
	c.Groups = append(c.Groups, &stored)
	return c.Groups[len(c.Groups)-1]
}

// MarkMissingNEVRA forces NEVRAOfGroup to report !ok for this group, for
// exercising the InconsistentGroup skip-and-continue path.
func (g *Group) MarkMissingNEVRA() *Group {
	g.missingNEVRA = true
	return g
}

// bareName returns the first whitespace-separated token of expr — the
// catalog's provides/requires index is keyed on this, mirroring the
// original source's base_thing lookup.
func bareName(expr string) string {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return expr
	}
	return fields[0]
}

func (c *Catalog) ProvidersOfName(thing string) ([]depclose.ProviderRef, error) {
	base := bareName(thing)
	var refs []depclose.ProviderRef
	for _, g := range c.Groups {
		for _, p := range g.Provides {
			if bareName(p) == base {
				if p == base {
					refs = append(refs, depclose.ProviderRef{GroupID: g.ID})
				} else {
					refs = append(refs, depclose.ProviderRef{GroupID: g.ID, Expr: p, HasExpr: true})
				}
			}
		}
	}
	return refs, nil
}

func (c *Catalog) GroupsContainingFile(path string) ([]int64, error) {
	var ids []int64
	for _, g := range c.Groups {
		for _, f := range g.Files {
			if f == path {
				ids = append(ids, g.ID)
			}
		}
	}
	return ids, nil
}

func (c *Catalog) RequirementsOfGroup(groupID int64) ([]string, error) {
	g := c.find(groupID)
	if g == nil {
		return nil, nil
	}
	var out []string
	for _, r := range g.Requires {
		if strings.HasPrefix(r, "rpmlib") {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (c *Catalog) ObsoletesOfGroup(groupID int64) ([]depclose.ObsoleteRef, error) {
	g := c.find(groupID)
	if g == nil {
		return nil, nil
	}
	var out []depclose.ObsoleteRef
	for _, o := range g.Obsoletes {
		out = append(out, depclose.ObsoleteRef{Name: g.NEVRA.Name, Expr: o})
	}
	return out, nil
}

func (c *Catalog) NEVRAOfGroup(groupID int64) (depclose.NEVRA, bool, error) {
	g := c.find(groupID)
	if g == nil || g.missingNEVRA {
		return depclose.NEVRA{}, false, nil
	}
	return g.NEVRA, true, nil
}

func (c *Catalog) find(groupID int64) *Group {
	for _, g := range c.Groups {
		if g.ID == groupID {
			return g
		}
	}
	return nil
}

// SortedKeys is a small test helper: the sorted keys of a ProviderMap.
func SortedKeys(m depclose.ProviderMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
