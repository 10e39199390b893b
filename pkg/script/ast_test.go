package script

import "testing"

func TestBinaryString(t *testing.T) {
	b := &Binary{Op: "+", Left: &Ident{Name: "a"}, Right: &Ident{Name: "b"}}
	if got := b.String(); got != "(a + b)" {
		t.Fatalf("got %q, want %q", got, "(a + b)")
	}
}

func TestCallString(t *testing.T) {
	c := &Call{Callee: &Ident{Name: "f"}, Args: []Expr{&Ident{Name: "x"}, &Ident{Name: "y"}}}
	if got := c.String(); got != "f(x, y)" {
		t.Fatalf("got %q, want %q", got, "f(x, y)")
	}
}

func TestMemberString(t *testing.T) {
	m := &Member{Object: &Ident{Name: "obj"}, Property: "prop"}
	if got := m.String(); got != "obj.prop" {
		t.Fatalf("got %q, want %q", got, "obj.prop")
	}
}

func TestLiteralStringVariants(t *testing.T) {
	cases := []struct {
		lit  *Literal
		want string
	}{
		{&Literal{Kind: LitNumber, Num: 3}, "3"},
		{&Literal{Kind: LitString, Str: "hi"}, `"hi"`},
		{&Literal{Kind: LitBool, Bool: true}, "true"},
		{&Literal{Kind: LitNull}, "null"},
		{&Literal{Kind: LitRegex, Str: "a+", Flags: "g"}, "/a+/g"},
	}
	for _, c := range cases {
		if got := c.lit.String(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}

func TestConditionalString(t *testing.T) {
	c := &Conditional{Test: &Ident{Name: "t"}, Then: &Ident{Name: "a"}, Else: &Ident{Name: "b"}}
	if got := c.String(); got != "(t ? a : b)" {
		t.Fatalf("got %q, want %q", got, "(t ? a : b)")
	}
}
