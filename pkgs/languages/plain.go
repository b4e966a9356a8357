package languages

import (
	"github.com/aledsdavies/glint/pkgs/grammar"
	"github.com/aledsdavies/glint/pkgs/token"
)

// Plain is the last-resort language: everything is Text. Its confidence is a
// hair above zero so Guess always has an answer.
var Plain = &Language{
	Name:      "text",
	Aliases:   []string{"plain", "raw"},
	Filenames: []string{"*.txt"},
	Grammar: &grammar.Grammar{
		States: map[string][]grammar.RawRule{
			"root": {
				grammar.Rule{Pattern: `[^\n]+`, Action: grammar.Emit{Type: token.Text}},
				grammar.Rule{Pattern: `\n`, Action: grammar.Emit{Type: token.Whitespace}},
			},
		},
		AnalyzeText: func(string) float64 { return 0.01 },
	},
}

func init() {
	Register(Plain)
}
