package formatters

import (
	"fmt"
	"io"
	"strings"

	"github.com/aledsdavies/glint/pkgs/lexer"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// HTML renders a stream as span tags with short-name classes inside a
// highlight div, the shape stylesheet-based highlighters expect.
type HTML struct {
	// CSSClass names the wrapping div; "highlight" when empty.
	CSSClass string
	// ClassPrefix is prepended to every span class, for namespacing the
	// stylesheet.
	ClassPrefix string
}

// NewHTML returns an HTML formatter with default classes.
func NewHTML() *HTML {
	return &HTML{}
}

// Format writes the highlighted HTML to w. Token text is escaped; tokens
// whose type has no short name (plain text) are written without a span.
func (f *HTML) Format(w io.Writer, stream *lexer.Stream) error {
	cssClass := f.CSSClass
	if cssClass == "" {
		cssClass = "highlight"
	}
	if _, err := fmt.Fprintf(w, `<div class="%s"><pre>`, cssClass); err != nil {
		return err
	}
	for {
		tok, ok := stream.Next()
		if !ok {
			break
		}
		class := ""
		if tok.Type != nil {
			class = tok.Type.ShortName()
		}
		var err error
		if class != "" {
			_, err = fmt.Fprintf(w, `<span class="%s%s">%s</span>`, f.ClassPrefix, class, htmlEscaper.Replace(tok.Value))
		} else {
			_, err = io.WriteString(w, htmlEscaper.Replace(tok.Value))
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</pre></div>\n")
	return err
}
