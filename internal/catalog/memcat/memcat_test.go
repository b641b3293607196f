package memcat_test

import (
	"testing"

	"github.com/open-edge-platform/pkgcloser/internal/catalog/cattest"
	"github.com/open-edge-platform/pkgcloser/internal/catalog/memcat"
	"github.com/open-edge-platform/pkgcloser/internal/depclose"
)

func nevra(name, version, release, arch string) depclose.NEVRA {
	return depclose.NEVRA{Name: name, Version: version, Release: release, Arch: arch}
}

func TestGatewayConformance(t *testing.T) {
	cases := []cattest.Case{
		{
			Name: "SimpleChain",
			Build: func() depclose.CatalogGateway {
				cat := memcat.New()
				cat.AddGroup(memcat.Group{ID: 1, NEVRA: nevra("A", "1.0", "1", "x86_64"), Provides: []string{"A"}, Requires: []string{"B"}})
				cat.AddGroup(memcat.Group{ID: 2, NEVRA: nevra("B", "1.0", "1", "x86_64"), Provides: []string{"B"}, Requires: []string{"C"}})
				cat.AddGroup(memcat.Group{ID: 3, NEVRA: nevra("C", "1.0", "1", "x86_64"), Provides: []string{"C"}})
				return cat
			},
			Requested: []string{"A"},
			WantNames: []string{"A", "B", "C"},
		},
		{
			Name: "MultipleProviders",
			Build: func() depclose.CatalogGateway {
				cat := memcat.New()
				cat.AddGroup(memcat.Group{ID: 1, NEVRA: nevra("Y", "1.0", "1", "x86_64"), Provides: []string{"Y"}})
				cat.AddGroup(memcat.Group{ID: 2, NEVRA: nevra("P1", "1.0", "1", "x86_64"), Provides: []string{"X"}})
				cat.AddGroup(memcat.Group{ID: 3, NEVRA: nevra("P2", "1.0", "1", "x86_64"), Provides: []string{"X"}, Requires: []string{"Y"}})
				cat.AddGroup(memcat.Group{ID: 4, NEVRA: nevra("A", "1.0", "1", "x86_64"), Provides: []string{"A"}, Requires: []string{"X"}})
				return cat
			},
			Requested: []string{"A"},
			WantNames: []string{"A", "P1", "P2", "Y"},
		},
		{
			Name: "FilePathRequirement",
			Build: func() depclose.CatalogGateway {
				cat := memcat.New()
				cat.AddGroup(memcat.Group{ID: 1, NEVRA: nevra("A", "1.0", "1", "x86_64"), Provides: []string{"A"}, Requires: []string{"/usr/bin/ls"}})
				cat.AddGroup(memcat.Group{ID: 2, NEVRA: nevra("B", "1.0", "1", "x86_64"), Provides: []string{"coreutils"}, Files: []string{"/usr/bin/ls"}})
				return cat
			},
			Requested: []string{"A"},
			WantNames: []string{"A", "B"},
		},
	}

	cattest.RunGatewayTests(t, "memcat", cases)
}
