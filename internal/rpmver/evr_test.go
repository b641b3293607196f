package rpmver

import "testing"

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"1.0",
		"1.0-1",
		"0:1.0-1",
		"2:1.0.0-5.el9",
		"1.0~rc1",
		"1.0~rc1-1",
	}
	for _, s := range cases {
		evr, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", s, err)
		}
		got := evr.String()
		if got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
	}{
		{"x:1.0", BadEpoch},
		{"-1.0", MissingVersion},
		{"", MissingVersion},
		{"1.0-", MissingRelease},
		{"1.0#bad", IllegalCharacter},
		{"1.0-bad!", IllegalCharacter},
	}
	for _, c := range cases {
		_, err := Parse(c.in)
		if err == nil {
			t.Fatalf("Parse(%q): expected error, got nil", c.in)
		}
		pe, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("Parse(%q): error is not *ParseError: %T", c.in, err)
		}
		if pe.Kind != c.kind {
			t.Errorf("Parse(%q): Kind = %v, want %v", c.in, pe.Kind, c.kind)
		}
	}
}

func TestCompareEpochDominates(t *testing.T) {
	a := EVR{Epoch: 0, Version: "9", Release: "1"}
	b := EVR{Epoch: 1, Version: "1", Release: "1"}
	if got := Compare(a, b); got != Less {
		t.Errorf("Compare(0:9-1, 1:1-1) = %v, want Less", got)
	}
	if got := Compare(b, a); got != Greater {
		t.Errorf("Compare(1:1-1, 0:9-1) = %v, want Greater", got)
	}
}

func TestCompareReflexive(t *testing.T) {
	evr, err := Parse("1:2.0-3")
	if err != nil {
		t.Fatal(err)
	}
	if got := Compare(evr, evr); got != Equal {
		t.Errorf("Compare(x, x) = %v, want Equal", got)
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	a, _ := Parse("1.0-1")
	b, _ := Parse("1.0-2")
	ab := Compare(a, b)
	ba := Compare(b, a)
	if ab == Equal || ba == Equal {
		t.Fatalf("expected a strict ordering between 1.0-1 and 1.0-2, got %v and %v", ab, ba)
	}
	if ab == ba {
		t.Errorf("Compare(a,b) and Compare(b,a) both %v, want opposite signs", ab)
	}
}

func TestCompareTransitive(t *testing.T) {
	a, _ := Parse("1.0-1")
	b, _ := Parse("1.0-2")
	c, _ := Parse("1.0-3")
	if Compare(a, b) != Less || Compare(b, c) != Less {
		t.Fatal("fixture ordering assumption broken")
	}
	if got := Compare(a, c); got != Less {
		t.Errorf("Compare(a,c) = %v, want Less (transitivity)", got)
	}
}
