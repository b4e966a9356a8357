package languages

import (
	"strings"

	"github.com/aledsdavies/glint/pkgs/grammar"
	"github.com/aledsdavies/glint/pkgs/token"
)

// JSON covers RFC 8259 plus nothing else. Object keys lex as Name.Tag, which
// is why the object state lists its key rule ahead of the shared value rules:
// first match wins.
var JSON = &Language{
	Name:      "json",
	Aliases:   []string{"json5lite"},
	Filenames: []string{"*.json"},
	Grammar: &grammar.Grammar{
		States: map[string][]grammar.RawRule{
			"whitespace": {
				grammar.Rule{Pattern: `\s+`, Action: grammar.Emit{Type: token.Whitespace}},
			},
			"value": {
				grammar.Include("whitespace"),
				grammar.Rule{Pattern: `"`, Action: grammar.Emit{Type: token.StringDouble}, Transitions: grammar.To("string")},
				grammar.Rule{Pattern: `-?(?:0|[1-9]\d*)\.\d+(?:[eE][-+]?\d+)?`, Action: grammar.Emit{Type: token.NumberFloat}},
				grammar.Rule{Pattern: `-?(?:0|[1-9]\d*)(?:[eE][-+]?\d+)?`, Action: grammar.Emit{Type: token.NumberInteger}},
				grammar.Rule{Pattern: `true|false`, Action: grammar.Emit{Type: token.KeywordConstant}},
				grammar.Rule{Pattern: `null`, Action: grammar.Emit{Type: token.KeywordConstant}},
				grammar.Rule{Pattern: `\{`, Action: grammar.Emit{Type: token.Punctuation}, Transitions: grammar.To("object")},
				grammar.Rule{Pattern: `\[`, Action: grammar.Emit{Type: token.Punctuation}, Transitions: grammar.To("array")},
			},
			"string": {
				grammar.Rule{Pattern: `[^"\\]+`, Action: grammar.Emit{Type: token.StringDouble}},
				grammar.Rule{Pattern: `\\(?:["\\/bfnrt]|u[0-9a-fA-F]{4})`, Action: grammar.Emit{Type: token.StringEscape}},
				grammar.Rule{Pattern: `"`, Action: grammar.Emit{Type: token.StringDouble}, Transitions: grammar.To("#pop")},
			},
			"object": {
				grammar.Include("whitespace"),
				// key, optional space, colon: one rule, one token per group
				grammar.Rule{
					Pattern: `("(?:\\.|[^"\\])*")([ \t]*)(:)`,
					Action:  grammar.ByGroups{Types: []*token.Type{token.NameTag, token.Whitespace, token.Punctuation}},
				},
				grammar.Rule{Pattern: `,`, Action: grammar.Emit{Type: token.Punctuation}},
				grammar.Rule{Pattern: `\}`, Action: grammar.Emit{Type: token.Punctuation}, Transitions: grammar.To("#pop")},
				grammar.Include("value"),
			},
			"array": {
				grammar.Rule{Pattern: `,`, Action: grammar.Emit{Type: token.Punctuation}},
				grammar.Rule{Pattern: `\]`, Action: grammar.Emit{Type: token.Punctuation}, Transitions: grammar.To("#pop")},
				grammar.Include("value"),
			},
			"root": {
				grammar.Include("value"),
			},
		},
		AnalyzeText: analyzeJSON,
	},
}

func analyzeJSON(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	switch trimmed[0] {
	case '{', '[':
		if strings.HasSuffix(trimmed, "}") || strings.HasSuffix(trimmed, "]") {
			return 0.8
		}
		return 0.4
	case '"':
		return 0.2
	}
	return 0
}

func init() {
	Register(JSON)
}
