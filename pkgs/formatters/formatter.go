// Package formatters renders token streams for humans. Formatters depend
// only on the public stream: offsets, token types (via subtype queries and
// short names), and exact source values.
package formatters

import (
	"io"

	"github.com/aledsdavies/glint/pkgs/lexer"
)

// Formatter writes a rendering of the stream to w. Implementations must
// preserve the source text verbatim inside their own markup.
type Formatter interface {
	Format(w io.Writer, stream *lexer.Stream) error
}
