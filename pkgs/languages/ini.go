package languages

import (
	"strings"

	"github.com/aledsdavies/glint/pkgs/grammar"
	"github.com/aledsdavies/glint/pkgs/token"
)

// INI handles the common dialect: [sections], ; and # comments, key=value
// with = or : separators.
var INI = &Language{
	Name:      "ini",
	Aliases:   []string{"cfg", "dosini"},
	Filenames: []string{"*.ini", "*.cfg", "*.conf"},
	Grammar: &grammar.Grammar{
		States: map[string][]grammar.RawRule{
			"root": {
				grammar.Rule{Pattern: `\s+`, Action: grammar.Emit{Type: token.Whitespace}},
				grammar.Rule{Pattern: `[;#].*`, Action: grammar.Emit{Type: token.CommentSingle}},
				grammar.Rule{Pattern: `\[[^\]\n]+\]`, Action: grammar.Emit{Type: token.Keyword}},
				grammar.Rule{
					Pattern: `([^=:\s\[][^=:\n]*?)([ \t]*)([=:])([ \t]*)([^\n]*)`,
					Action: grammar.ByGroups{Types: []*token.Type{
						token.NameAttribute, token.Whitespace, token.Operator, token.Whitespace, token.String,
					}},
				},
				grammar.Rule{Pattern: `[^\n]+`, Action: grammar.Emit{Type: token.Text}},
			},
		},
		AnalyzeText: analyzeINI,
	},
}

func analyzeINI(text string) float64 {
	score := 0.0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			score += 0.3
		case strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#"):
			score += 0.1
		case strings.Contains(line, "="):
			score += 0.1
		}
	}
	return score
}

func init() {
	Register(INI)
}
