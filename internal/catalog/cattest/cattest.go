// Package cattest is a shared conformance table for depclose.CatalogGateway
// implementations: build a fixture, run the same scenarios through it, and
// check the same closure results regardless of backing store.
package cattest

import (
	"reflect"
	"sort"
	"testing"

	"github.com/open-edge-platform/pkgcloser/internal/depclose"
)

func propositionNames(props []depclose.Proposition) []string {
	var outs []string
	for _, p := range props {
		switch p.Kind {
		case depclose.ProvidesKind, depclose.RequiresKind:
			outs = append(outs, p.NEVRA.Name)
		case depclose.ObsoletesKind:
			outs = append(outs, p.Left)
		}
	}
	sort.Strings(outs)
	return outs
}

// Case is one closure scenario: Build constructs a fresh gateway (so cases
// don't share catalog state), Requested is the top-level name set, and
// WantNames is the sorted, deduplicated set of package names that should
// appear somewhere in the closure's propositions.
type Case struct {
	Name      string
	Build     func() depclose.CatalogGateway
	Requested []string
	WantNames []string
}

// RunGatewayTests drives a depclose.CatalogGateway implementation through
// Cases, checking that Close over it produces the same package-name set
// regardless of which gateway is under test.
func RunGatewayTests(t *testing.T, prefix string, cases []Case) {
	t.Helper()
	for _, tc := range cases {
		t.Run(prefix+"/"+tc.Name, func(t *testing.T) {
			gw := tc.Build()
			props, _, err := depclose.Close(gw, tc.Requested)
			if err != nil {
				t.Fatalf("Close: unexpected error: %v", err)
			}
			got := propositionNames(props)
			want := append([]string(nil), tc.WantNames...)
			sort.Strings(want)
			if !reflect.DeepEqual(dedupe(got), dedupe(want)) {
				t.Errorf("Close(%v) package names = %v, want %v", tc.Requested, got, want)
			}
		})
	}
}

func dedupe(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
