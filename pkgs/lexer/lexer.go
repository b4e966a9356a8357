package lexer

import (
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/aledsdavies/glint/internal/logging"
	glinterrors "github.com/aledsdavies/glint/pkgs/errors"
	"github.com/aledsdavies/glint/pkgs/grammar"
	"github.com/aledsdavies/glint/pkgs/token"
)

var log = logging.DefaultLogger.WithField(logging.Subsys, "lexer")

// Token is one element of the output stream: the exact source slice Value
// starting at byte Offset, classified as Type. Type is nil for text a rule
// matched without classifying (grammar.Emit with a nil type); formatters
// render those plain. Concatenating every Value in stream order reproduces
// the lexed text exactly, whatever the input.
type Token struct {
	Offset int
	Type   *token.Type
	Value  string
}

// Option configures a Lexer.
type Option func(*config)

type config struct {
	stripNewlines bool
	ensureNewline bool
	tabSize       int
	inputEncoding string
}

// WithStripNewlines strips leading and trailing newlines from the input
// before lexing.
func WithStripNewlines() Option {
	return func(c *config) { c.stripNewlines = true }
}

// WithEnsureTrailingNewline appends a final newline if the input lacks one.
func WithEnsureTrailingNewline() Option {
	return func(c *config) { c.ensureNewline = true }
}

// WithTabSize expands tabs to spaces with the given tab stop width before
// lexing. Zero (the default) leaves tabs alone.
func WithTabSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.tabSize = n
		}
	}
}

// WithInputEncoding sets the charset TokenizeBytes decodes raw input with,
// by IANA name (e.g. "ISO-8859-1"). The default is UTF-8 as-is.
func WithInputEncoding(name string) Option {
	return func(c *config) { c.inputEncoding = name }
}

// Lexer binds a compiled grammar to input-normalization options and produces
// token streams. A Lexer is immutable and safe for concurrent use; every
// Tokenize call owns its own run state.
type Lexer struct {
	compiled *grammar.Compiled
	cfg      config
}

// New builds a Lexer over a compiled grammar. It re-checks that every state
// the grammar's transitions can reach exists, so a hand-assembled Compiled
// with dangling references fails here (MALFORMED_COMPILED_GRAMMAR) instead of
// mid-run.
func New(compiled *grammar.Compiled, opts ...Option) (*Lexer, error) {
	if compiled == nil {
		return nil, glinterrors.NewMalformedCompiledGrammarError(grammar.RootState)
	}
	if _, ok := compiled.States[grammar.RootState]; !ok {
		return nil, glinterrors.NewMalformedCompiledGrammarError(grammar.RootState)
	}
	for name, rules := range compiled.States {
		for _, r := range rules {
			for _, t := range r.Transitions {
				var target string
				switch tr := t.(type) {
				case grammar.Push:
					target = string(tr)
				case grammar.Goto:
					target = string(tr)
				default:
					continue
				}
				if _, ok := compiled.States[target]; !ok {
					log.WithField("state", target).WithField("from", name).
						Debug("Rejected compiled grammar with dangling state reference")
					return nil, glinterrors.NewMalformedCompiledGrammarError(target)
				}
			}
		}
	}

	l := &Lexer{compiled: compiled}
	for _, opt := range opts {
		opt(&l.cfg)
	}
	return l, nil
}

// Tokenize normalizes text per the Lexer's options and returns a lazy token
// stream over it. Calling Tokenize twice with the same text yields identical
// streams; abandoning a stream early is always safe.
func (l *Lexer) Tokenize(text string) *Stream {
	return newStream(l.compiled, l.normalize(text))
}

// TokenizeBytes decodes raw bytes using the configured input encoding, then
// tokenizes as Tokenize does.
func (l *Lexer) TokenizeBytes(data []byte) (*Stream, error) {
	text, err := l.decode(data)
	if err != nil {
		return nil, err
	}
	return l.Tokenize(text), nil
}

// TokenizeToSlice drains a full token stream into a slice.
func (l *Lexer) TokenizeToSlice(text string) []Token {
	s := l.Tokenize(text)
	var out []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// EstimateConfidence reports how likely this Lexer's grammar is the right one
// for the sample, in [0,1]. Grammars without an AnalyzeText hook score 0.
func (l *Lexer) EstimateConfidence(text string) float64 {
	if l.compiled.Analyze == nil {
		return 0
	}
	score := l.compiled.Analyze(text)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// normalize applies the configured input transformations, in a fixed order,
// exactly once per Tokenize call.
func (l *Lexer) normalize(text string) string {
	if l.cfg.stripNewlines {
		text = strings.Trim(text, "\n")
	}
	if l.cfg.tabSize > 0 && strings.ContainsRune(text, '\t') {
		text = expandTabs(text, l.cfg.tabSize)
	}
	if l.cfg.ensureNewline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

func (l *Lexer) decode(data []byte) (string, error) {
	if l.cfg.inputEncoding == "" {
		return string(data), nil
	}
	enc, err := ianaindex.IANA.Encoding(l.cfg.inputEncoding)
	if err != nil || enc == nil {
		return "", glinterrors.NewUnknownEncodingError(l.cfg.inputEncoding, err)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", glinterrors.Wrap(glinterrors.ErrInputRead, "decoding input failed", err).
			WithContext("encoding", l.cfg.inputEncoding)
	}
	return string(decoded), nil
}

// expandTabs replaces tabs with spaces up to the next multiple-of-size
// column, resetting the column at newlines.
func expandTabs(text string, size int) string {
	var b strings.Builder
	b.Grow(len(text))
	col := 0
	for _, r := range text {
		switch r {
		case '\t':
			pad := size - col%size
			for i := 0; i < pad; i++ {
				b.WriteByte(' ')
			}
			col += pad
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
