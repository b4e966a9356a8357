package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInterning(t *testing.T) {
	tests := []struct {
		name string
		a    *Type
		b    *Type
	}{
		{"same path same node", Get("Keyword", "Constant"), Get("Keyword", "Constant")},
		{"standard var matches Get", KeywordConstant, Get("Keyword", "Constant")},
		{"sub matches Get", Keyword.Sub("Constant"), Get("Keyword", "Constant")},
		{"parse matches Get", Parse("Token.Keyword.Constant"), Get("Keyword", "Constant")},
		{"parse without prefix", Parse("Keyword.Constant"), Get("Keyword", "Constant")},
		{"empty get is root", Get(), Root},
		{"parse empty is root", Parse(""), Root},
		{"parse Token is root", Parse("Token"), Root},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a != tt.b {
				t.Errorf("expected %v and %v to be the same interned node", tt.a, tt.b)
			}
		})
	}
}

func TestAncestorsCreated(t *testing.T) {
	deep := Get("Zeta", "Eta", "Theta")
	if deep.Parent() != Get("Zeta", "Eta") {
		t.Errorf("parent of %v = %v, want Token.Zeta.Eta", deep, deep.Parent())
	}
	if deep.Parent().Parent() != Get("Zeta") {
		t.Errorf("grandparent of %v = %v, want Token.Zeta", deep, deep.Parent().Parent())
	}
	if deep.Parent().Parent().Parent() != Root {
		t.Errorf("great-grandparent of %v should be the root", deep)
	}
}

func TestSubtypeOf(t *testing.T) {
	tests := []struct {
		name string
		a    *Type
		b    *Type
		want bool
	}{
		{"self", Keyword, Keyword, true},
		{"child of parent", KeywordConstant, Keyword, true},
		{"parent of child", Keyword, KeywordConstant, false},
		{"deep descendant", NameFunctionMagic, Name, true},
		{"everything under root", StringEscape, Root, true},
		{"root under root", Root, Root, true},
		{"root not under node", Root, Keyword, false},
		{"siblings unrelated", Keyword, Name, false},
		{"string under literal", StringDouble, Literal, true},
		{"nil other", Keyword, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SubtypeOf(tt.b); got != tt.want {
				t.Errorf("%v.SubtypeOf(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSubtypeTransitivity(t *testing.T) {
	a := Get("Literal", "String", "Escape")
	b := Get("Literal", "String")
	c := Get("Literal")
	if !a.SubtypeOf(b) || !b.SubtypeOf(c) {
		t.Fatal("premise chain broken")
	}
	if !a.SubtypeOf(c) {
		t.Errorf("%v should be a subtype of %v by transitivity", a, c)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		ttype *Type
		want  string
	}{
		{Root, "Token"},
		{Keyword, "Token.Keyword"},
		{KeywordConstant, "Token.Keyword.Constant"},
		{StringDouble, "Token.Literal.String.Double"},
	}
	for _, tt := range tests {
		if got := tt.ttype.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestShortName(t *testing.T) {
	tests := []struct {
		name  string
		ttype *Type
		want  string
	}{
		{"keyword", Keyword, "k"},
		{"keyword constant", KeywordConstant, "kc"},
		{"string double", StringDouble, "s2"},
		{"root", Root, ""},
		{"text", Text, ""},
		{"unknown falls back to parent", Keyword.Sub("Imaginary"), "k"},
		{"deep unknown falls back", StringDouble.Sub("Curly").Sub("Extra"), "s2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ttype.ShortName(); got != tt.want {
				t.Errorf("ShortName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathAndDepth(t *testing.T) {
	got := []interface{}{
		KeywordConstant.Path(), KeywordConstant.Depth(),
		Root.Path(), Root.Depth(),
	}
	want := []interface{}{"Keyword.Constant", 2, "", 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("path/depth mismatch (-want +got):\n%s", diff)
	}
}
