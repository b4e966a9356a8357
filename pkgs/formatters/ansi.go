package formatters

import (
	"io"

	"github.com/fatih/color"

	"github.com/aledsdavies/glint/pkgs/lexer"
	"github.com/aledsdavies/glint/pkgs/token"
)

// ansiStyle maps a taxonomy subtree to a terminal style. Entries are checked
// in order with a subtype test, so more specific types go first.
var ansiStyles = []struct {
	ttype *token.Type
	color *color.Color
}{
	{token.Error, color.New(color.FgWhite, color.BgRed)},
	{token.CommentSpecial, color.New(color.FgHiYellow)},
	{token.Comment, color.New(color.FgHiBlack)},
	{token.KeywordConstant, color.New(color.FgMagenta)},
	{token.Keyword, color.New(color.FgBlue, color.Bold)},
	{token.StringEscape, color.New(color.FgHiCyan)},
	{token.StringInterpol, color.New(color.FgHiMagenta)},
	{token.String, color.New(color.FgGreen)},
	{token.Number, color.New(color.FgCyan)},
	{token.NameTag, color.New(color.FgYellow)},
	{token.NameFunction, color.New(color.FgHiBlue)},
	{token.NameAttribute, color.New(color.FgYellow)},
	{token.Name, nil},
	{token.Operator, color.New(color.FgRed)},
	{token.Punctuation, nil},
	{token.GenericHeading, color.New(color.Bold)},
}

// ANSI renders a stream with terminal colors. Colors are suppressed
// automatically when the destination is not a terminal (fatih/color's
// NoColor handling), leaving the plain source text.
type ANSI struct{}

// NewANSI returns a terminal formatter.
func NewANSI() *ANSI {
	return &ANSI{}
}

// Format writes the colored stream to w.
func (f *ANSI) Format(w io.Writer, stream *lexer.Stream) error {
	for {
		tok, ok := stream.Next()
		if !ok {
			return nil
		}
		c := styleFor(tok.Type)
		var err error
		if c != nil {
			_, err = c.Fprint(w, tok.Value)
		} else {
			_, err = io.WriteString(w, tok.Value)
		}
		if err != nil {
			return err
		}
	}
}

func styleFor(t *token.Type) *color.Color {
	if t == nil {
		return nil
	}
	for _, s := range ansiStyles {
		if t.SubtypeOf(s.ttype) {
			return s.color
		}
	}
	return nil
}
