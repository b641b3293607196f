package depclose

import "testing"

func TestPropositionLessByKind(t *testing.T) {
	o := Obsoletes("z", "z-old")
	p := Provides(NEVRA{Name: "a"}, "a")
	r := Requires(NEVRA{Name: "a"}, "a")

	if !less(o, p) {
		t.Error("Obsoletes should sort before Provides")
	}
	if !less(p, r) {
		t.Error("Provides should sort before Requires")
	}
	if less(r, o) {
		t.Error("Requires should not sort before Obsoletes")
	}
}

func TestPropositionLessWithinKind(t *testing.T) {
	a := Obsoletes("aaa", "z")
	b := Obsoletes("bbb", "a")
	if !less(a, b) {
		t.Error("Obsoletes should break ties by Left lexicographically")
	}

	p1 := Provides(NEVRA{Name: "aaa"}, "z")
	p2 := Provides(NEVRA{Name: "bbb"}, "a")
	if !less(p1, p2) {
		t.Error("Provides should order by NEVRA before Right")
	}
}

func TestPropositionString(t *testing.T) {
	n := NEVRA{Name: "pkg", Version: "1.0", Release: "1", Arch: "x86_64"}
	cases := []struct {
		p    Proposition
		want string
	}{
		{Obsoletes("old", "old < 1.0"), "old obsoletes old < 1.0"},
		{Provides(n, "thing"), "pkg-1.0-1.x86_64 provides thing"},
		{Requires(n, "other >= 1.0"), "pkg-1.0-1.x86_64 requires other >= 1.0"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestNEVRAStringWithEpoch(t *testing.T) {
	n := NEVRA{Name: "pkg", Epoch: 2, HasE: true, Version: "1.0", Release: "1", Arch: "x86_64"}
	want := "pkg-2:1.0-1.x86_64"
	if got := n.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNEVRACompareEpochDominates(t *testing.T) {
	a := NEVRA{Name: "pkg", Epoch: 0, Version: "9", Release: "1", Arch: "x86_64"}
	b := NEVRA{Name: "pkg", Epoch: 1, Version: "1", Release: "1", Arch: "x86_64"}
	if Compare(a, b) != -1 {
		t.Errorf("Compare(0:9-1, 1:1-1) = %v, want Less", Compare(a, b))
	}
}

func TestSortPropositionsStable(t *testing.T) {
	props := []Proposition{
		Requires(NEVRA{Name: "b"}, "x"),
		Obsoletes("z", "y"),
		Provides(NEVRA{Name: "a"}, "thing"),
	}
	sortPropositions(props)
	if props[0].Kind != ObsoletesKind || props[1].Kind != ProvidesKind || props[2].Kind != RequiresKind {
		t.Errorf("sortPropositions did not order by Kind: %v", props)
	}
}
