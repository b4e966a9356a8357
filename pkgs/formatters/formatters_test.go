package formatters

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/glint/pkgs/grammar"
	"github.com/aledsdavies/glint/pkgs/lexer"
	"github.com/aledsdavies/glint/pkgs/token"
)

func testLexer(t *testing.T) *lexer.Lexer {
	t.Helper()
	g := &grammar.Grammar{
		States: map[string][]grammar.RawRule{
			"root": {
				grammar.Rule{Pattern: `\s+`, Action: grammar.Emit{Type: token.Whitespace}},
				grammar.Rule{Pattern: `<\w+>`, Action: grammar.Emit{Type: token.NameTag}},
				grammar.Rule{Pattern: `"[^"]*"`, Action: grammar.Emit{Type: token.StringDouble}},
				grammar.Rule{Pattern: `\w+`, Action: grammar.Emit{}},
			},
		},
	}
	compiled, err := grammar.Compile(g)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	lx, err := lexer.New(compiled)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return lx
}

func TestHTMLFormat(t *testing.T) {
	lx := testLexer(t)
	var b strings.Builder
	if err := NewHTML().Format(&b, lx.Tokenize(`<b> "x&y"`)); err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := `<div class="highlight"><pre>` +
		`<span class="nt">&lt;b&gt;</span>` +
		`<span class="w"> </span>` +
		`<span class="s2">&quot;x&amp;y&quot;</span>` +
		"</pre></div>\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestHTMLUntypedTokensHaveNoSpan(t *testing.T) {
	lx := testLexer(t)
	var b strings.Builder
	if err := NewHTML().Format(&b, lx.Tokenize("plain")); err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := `<div class="highlight"><pre>plain</pre></div>` + "\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestHTMLOptions(t *testing.T) {
	lx := testLexer(t)
	f := &HTML{CSSClass: "code", ClassPrefix: "gl-"}
	var b strings.Builder
	if err := f.Format(&b, lx.Tokenize("<b>")); err != nil {
		t.Fatalf("Format: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, `<div class="code">`) {
		t.Errorf("custom css class not applied: %q", out)
	}
	if !strings.Contains(out, `<span class="gl-nt">`) {
		t.Errorf("class prefix not applied: %q", out)
	}
}

func TestANSIPreservesText(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	lx := testLexer(t)
	input := `<b> "quoted" words`
	var b strings.Builder
	if err := NewANSI().Format(&b, lx.Tokenize(input)); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if b.String() != input {
		t.Errorf("with colors off the output must be the input: got %q", b.String())
	}
}

func TestStyleForPrefersSpecific(t *testing.T) {
	// Keyword.Constant has its own style, distinct from plain Keyword's.
	if styleFor(token.KeywordConstant) == styleFor(token.Keyword) {
		t.Error("Keyword.Constant should resolve its own style, not Keyword's")
	}
	// An unstyled subtree member inherits from its nearest styled ancestor.
	if styleFor(token.CommentSingle) != styleFor(token.Comment) {
		t.Error("Comment.Single should inherit Comment's style")
	}
	if styleFor(nil) != nil {
		t.Error("untyped tokens have no style")
	}
}
