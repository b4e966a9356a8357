package languages

import (
	"strings"

	"github.com/aledsdavies/glint/pkgs/grammar"
	"github.com/aledsdavies/glint/pkgs/token"
)

// expr is the expression mini-language embedded in templates. It is not
// registered on its own; the template grammar delegates interpolation bodies
// to it. Parentheses nest by pushing the current state again.
var exprGrammar = &grammar.Grammar{
	States: map[string][]grammar.RawRule{
		"root": {
			grammar.Rule{Pattern: `\s+`, Action: grammar.Emit{Type: token.Whitespace}},
			grammar.Rule{Pattern: `"(?:\\.|[^"\\])*"`, Action: grammar.Emit{Type: token.StringDouble}},
			grammar.Rule{Pattern: `\d+(?:\.\d+)?`, Action: grammar.Emit{Type: token.Number}},
			grammar.Rule{Pattern: `(?:and|or|not|in)\b`, Action: grammar.Emit{Type: token.OperatorWord}},
			grammar.Rule{Pattern: `(?:true|false|none)\b`, Action: grammar.Emit{Type: token.KeywordConstant}},
			grammar.Rule{Pattern: `[a-zA-Z_]\w*`, Action: grammar.Emit{Type: token.NameVariable}},
			grammar.Rule{Pattern: `\(`, Action: grammar.Emit{Type: token.Punctuation}, Transitions: []grammar.Transition{grammar.PushSame{}}},
			grammar.Rule{Pattern: `\)`, Action: grammar.Emit{Type: token.Punctuation}, Transitions: grammar.To("#pop")},
			grammar.Rule{Pattern: `[.,\[\]]`, Action: grammar.Emit{Type: token.Punctuation}},
			grammar.Rule{Pattern: `[-+*/%<>=!]+`, Action: grammar.Emit{Type: token.Operator}},
		},
	},
}

var exprCompiled = grammar.MustCompile(exprGrammar)

// Tmpl is a small Jinja-flavored template language. Interpolation bodies are
// re-lexed with the expression grammar; a "|" switches the interp state to
// the filter state in place.
var Tmpl = &Language{
	Name:      "tmpl",
	Aliases:   []string{"template"},
	Filenames: []string{"*.tmpl"},
	Grammar: &grammar.Grammar{
		States: map[string][]grammar.RawRule{
			"root": {
				grammar.Rule{Pattern: `[^{]+`, Action: grammar.Emit{Type: token.Other}},
				grammar.Rule{Pattern: `\{\{`, Action: grammar.Emit{Type: token.StringInterpol}, Transitions: grammar.To("interp")},
				grammar.Rule{Pattern: `\{#.*?#\}`, Action: grammar.Emit{Type: token.CommentMultiline}},
				grammar.Rule{Pattern: `\{`, Action: grammar.Emit{Type: token.Other}},
			},
			"interp": {
				grammar.Rule{Pattern: `\}\}`, Action: grammar.Emit{Type: token.StringInterpol}, Transitions: grammar.To("#pop")},
				grammar.Rule{Pattern: `\|`, Action: grammar.Emit{Type: token.Operator}, Transitions: grammar.To("#pop#push:filter")},
				grammar.Rule{Pattern: `[^|}]+`, Action: grammar.Using{Grammar: exprCompiled}},
			},
			"filter": {
				grammar.Rule{Pattern: `\}\}`, Action: grammar.Emit{Type: token.StringInterpol}, Transitions: grammar.To("#pop")},
				grammar.Rule{Pattern: `\s+`, Action: grammar.Emit{Type: token.Whitespace}},
				grammar.Rule{Pattern: `[a-zA-Z_]\w*`, Action: grammar.Emit{Type: token.NameFunction}},
				grammar.Rule{Pattern: `\|`, Action: grammar.Emit{Type: token.Operator}},
			},
		},
		AnalyzeText: analyzeTmpl,
	},
}

func analyzeTmpl(text string) float64 {
	score := 0.0
	if strings.Contains(text, "{{") && strings.Contains(text, "}}") {
		score += 0.5
	}
	if strings.Contains(text, "{#") {
		score += 0.2
	}
	return score
}

func init() {
	Register(Tmpl)
}
