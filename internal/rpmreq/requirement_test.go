package rpmreq

import "testing"

func TestParseBareName(t *testing.T) {
	r, err := Parse("libfoo")
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "libfoo" || r.Expr != nil {
		t.Errorf("Parse(%q) = %+v, want bare name", "libfoo", r)
	}
}

func TestParseWithOperator(t *testing.T) {
	r, err := Parse("libfoo >= 1.2-3")
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "libfoo" || r.Expr == nil {
		t.Fatalf("Parse: got %+v", r)
	}
	if r.Expr.Op != GE {
		t.Errorf("Op = %v, want GE", r.Expr.Op)
	}
	if r.Expr.EVR.Version != "1.2" || r.Expr.EVR.Release != "3" {
		t.Errorf("EVR = %+v, want version 1.2 release 3", r.Expr.EVR)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
	}{
		{"libfoo >= ", BadOperator},
		{"libfoo ~= 1.0", BadOperator},
		{"libfoo >= 1.0 extra", ExtraData},
		{"libfoo x:1.0", BadOperator},
	}
	for _, c := range cases {
		_, err := Parse(c.in)
		if err == nil {
			t.Fatalf("Parse(%q): expected error", c.in)
		}
		pe, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("Parse(%q): not a *ParseError: %T", c.in, err)
		}
		if pe.Kind != c.kind {
			t.Errorf("Parse(%q): Kind = %v, want %v", c.in, pe.Kind, c.kind)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	r, err := Parse("libfoo >= 1.2-3")
	if err != nil {
		t.Fatal(err)
	}
	want := "libfoo >= 1.2-3"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
