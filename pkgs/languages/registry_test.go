package languages

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	glinterrors "github.com/aledsdavies/glint/pkgs/errors"
	"github.com/aledsdavies/glint/pkgs/lexer"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"by name", "json", "json"},
		{"case insensitive", "JSON", "json"},
		{"by alias", "dosini", "ini"},
		{"alias case insensitive", "Template", "tmpl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, err := Get(tt.query)
			if err != nil {
				t.Fatalf("Get(%q): %v", tt.query, err)
			}
			if lang.Name != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.query, lang.Name, tt.want)
			}
		})
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("cobol")
	if !glinterrors.IsErrorType(err, glinterrors.ErrLanguageNotFound) {
		t.Errorf("expected %s, got %v", glinterrors.ErrLanguageNotFound, err)
	}
}

func TestForFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"config.json", "json"},
		{"/etc/app/settings.ini", "ini"},
		{"site.conf", "ini"},
		{"page.tmpl", "tmpl"},
		{"notes.txt", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			lang, err := ForFilename(tt.path)
			if err != nil {
				t.Fatalf("ForFilename(%q): %v", tt.path, err)
			}
			if lang.Name != tt.want {
				t.Errorf("ForFilename(%q) = %q, want %q", tt.path, lang.Name, tt.want)
			}
		})
	}
}

func TestGuess(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"json object", `{"a": [1, 2]}`, "json"},
		{"ini file", "[section]\nkey = value\n; note\n", "ini"},
		{"template", "Hello {{ name | upper }}!", "tmpl"},
		{"prose falls back to text", "Just some ordinary prose.", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, err := Guess(tt.text)
			if err != nil {
				t.Fatalf("Guess: %v", err)
			}
			if lang.Name != tt.want {
				t.Errorf("Guess(%q) = %q, want %q", tt.text, lang.Name, tt.want)
			}
		})
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
	for _, want := range []string{"ini", "json", "text", "tmpl"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Names() missing %q: %v", want, names)
		}
	}
}

func TestCompiledIsShared(t *testing.T) {
	a, err := JSON.Compiled()
	if err != nil {
		t.Fatalf("Compiled: %v", err)
	}
	b, err := JSON.Compiled()
	if err != nil {
		t.Fatalf("Compiled: %v", err)
	}
	if a != b {
		t.Error("Compiled should return the same compiled grammar every call")
	}
}

// roundTrip asserts the language reproduces the input exactly.
func roundTrip(t *testing.T, lang *Language, input string) []lexer.Token {
	t.Helper()
	lx, err := lang.Lexer()
	if err != nil {
		t.Fatalf("%s: Lexer: %v", lang.Name, err)
	}
	tokens := lx.TokenizeToSlice(input)
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Value)
	}
	if b.String() != input {
		t.Errorf("%s: round trip failed:\n in: %q\nout: %q", lang.Name, input, b.String())
	}
	return tokens
}

func typeNames(tokens []lexer.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok.Type == nil {
			out[i] = ""
		} else {
			out[i] = tok.Type.String()
		}
	}
	return out
}

func TestJSONLexing(t *testing.T) {
	tokens := roundTrip(t, JSON, `{"k": [1, true]}`)
	want := []string{
		"Token.Punctuation",            // {
		"Token.Name.Tag",               // "k"
		"Token.Punctuation",            // :
		"Token.Text.Whitespace",        // space
		"Token.Punctuation",            // [
		"Token.Literal.Number.Integer", // 1
		"Token.Punctuation",            // ,
		"Token.Text.Whitespace",        // space
		"Token.Keyword.Constant",       // true
		"Token.Punctuation",            // ]
		"Token.Punctuation",            // }
	}
	if diff := cmp.Diff(want, typeNames(tokens)); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONStringEscapes(t *testing.T) {
	tokens := roundTrip(t, JSON, `"a\nAb"`)
	want := []string{
		"Token.Literal.String.Double", // opening quote
		"Token.Literal.String.Double", // a
		"Token.Literal.String.Escape", // \n
		"Token.Literal.String.Double", // Ab
		"Token.Literal.String.Double", // closing quote
	}
	if diff := cmp.Diff(want, typeNames(tokens)); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONGarbageDoesNotAbort(t *testing.T) {
	roundTrip(t, JSON, "{]]~~ not json at all \x01")
}

func TestINILexing(t *testing.T) {
	tokens := roundTrip(t, INI, "[server]\nport = 8080\n; done\n")
	want := []string{
		"Token.Keyword",         // [server]
		"Token.Text.Whitespace", // \n
		"Token.Name.Attribute",  // port
		"Token.Text.Whitespace", // space
		"Token.Operator",        // =
		"Token.Text.Whitespace", // space
		"Token.Literal.String",  // 8080
		"Token.Text.Whitespace", // \n
		"Token.Comment.Single",  // ; done
		"Token.Text.Whitespace", // \n
	}
	if diff := cmp.Diff(want, typeNames(tokens)); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s", diff)
	}
}

func TestTmplLexing(t *testing.T) {
	tokens := roundTrip(t, Tmpl, "Hi {{ user.name | upper }}!")
	want := []string{
		"Token.Other",                   // Hi space
		"Token.Literal.String.Interpol", // {{
		"Token.Text.Whitespace",         // space (expr grammar)
		"Token.Name.Variable",           // user
		"Token.Punctuation",             // .
		"Token.Name.Variable",           // name
		"Token.Text.Whitespace",         // space
		"Token.Operator",                // |
		"Token.Text.Whitespace",         // space (filter state)
		"Token.Name.Function",           // upper
		"Token.Text.Whitespace",         // space
		"Token.Literal.String.Interpol", // }}
		"Token.Other",                   // !
	}
	if diff := cmp.Diff(want, typeNames(tokens)); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s", diff)
	}
}

func TestTmplComment(t *testing.T) {
	tokens := roundTrip(t, Tmpl, "a{# note #}b")
	want := []string{
		"Token.Other",
		"Token.Comment.Multiline",
		"Token.Other",
	}
	if diff := cmp.Diff(want, typeNames(tokens)); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s", diff)
	}
}
