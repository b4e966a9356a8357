package lexer

import (
	"unicode/utf8"

	"github.com/aledsdavies/glint/pkgs/grammar"
	"github.com/aledsdavies/glint/pkgs/token"
)

// Stream lazily produces tokens for one text. Tokens arrive in strictly
// textual order: offsets never decrease, and the final token ends exactly at
// len(text). A Stream is single-use and not safe for concurrent Next calls;
// run one Stream per goroutine.
type Stream struct {
	text    string
	states  map[string][]grammar.CompiledRule
	stack   []string
	pos     int
	pending []Token
}

func newStream(compiled *grammar.Compiled, text string) *Stream {
	return &Stream{
		text:   text,
		states: compiled.States,
		stack:  []string{grammar.RootState},
	}
}

// Next returns the next token, or ok=false once the input is exhausted.
// Input can never abort a stream: unmatched text degrades to one Error token
// per character and lexing continues.
func (s *Stream) Next() (Token, bool) {
	for {
		if len(s.pending) > 0 {
			tok := s.pending[0]
			s.pending = s.pending[1:]
			return tok, true
		}
		if s.pos >= len(s.text) {
			return Token{}, false
		}
		s.step()
	}
}

// step advances the machine by one rule match (or one recovery character),
// queueing whatever tokens that produced.
func (s *Stream) step() {
	rules := s.states[s.stack[len(s.stack)-1]]
	for _, rule := range rules {
		m := rule.Match.FindStringSubmatchIndex(s.text[s.pos:])
		if m == nil {
			continue
		}
		matchLen := m[1]
		s.dispatch(rule.Action, m)

		topBefore := s.stack[len(s.stack)-1]
		depthBefore := len(s.stack)
		for _, t := range rule.Transitions {
			s.apply(t)
		}
		s.pos += matchLen

		// A zero-width match that also left the stack where it was would
		// match the same rule forever. Treat the next character as
		// unrecognized and move on.
		if matchLen == 0 && len(s.stack) == depthBefore && s.stack[len(s.stack)-1] == topBefore {
			s.recover()
		}
		return
	}
	s.recover()
}

// recover emits a single Error token for the character at the current
// position. This is the only policy for unmatched input.
func (s *Stream) recover() {
	_, size := utf8.DecodeRuneInString(s.text[s.pos:])
	if size == 0 {
		size = 1
	}
	s.pending = append(s.pending, Token{
		Offset: s.pos,
		Type:   token.Error,
		Value:  s.text[s.pos : s.pos+size],
	})
	s.pos += size
}

// dispatch queues the tokens an action produces for match m (submatch index
// pairs relative to s.pos). Offsets are taken before the position advances.
func (s *Stream) dispatch(action grammar.Action, m []int) {
	switch a := action.(type) {
	case nil:
		// Pure state-transition rule with no action at all: emit the match
		// untyped so the text is not lost.
		if m[1] > 0 {
			s.pending = append(s.pending, Token{
				Offset: s.pos,
				Value:  s.text[s.pos : s.pos+m[1]],
			})
		}
	case grammar.Emit:
		if m[1] > 0 {
			s.pending = append(s.pending, Token{
				Offset: s.pos,
				Type:   a.Type,
				Value:  s.text[s.pos : s.pos+m[1]],
			})
		}
	case grammar.ByGroups:
		for i, ttype := range a.Types {
			gi := 2 * (i + 1)
			if gi+1 >= len(m) {
				break
			}
			start, end := m[gi], m[gi+1]
			if start < 0 || ttype == nil || end == start {
				continue
			}
			s.pending = append(s.pending, Token{
				Offset: s.pos + start,
				Type:   ttype,
				Value:  s.text[s.pos+start : s.pos+end],
			})
		}
	case grammar.Using:
		s.delegate(a, s.pos, s.text[s.pos:s.pos+m[1]])
	}
}

// delegate re-lexes matched against a.Grammar, rebasing every sub-token by
// base before queueing it. Sub-tokens interleave in textual order before
// control returns to the outer loop. The sub-stream's own recovery policy
// guarantees it covers the whole substring, so nothing is filled in here;
// with a.Wrap set, sub-tokens the delegate left untyped take the Wrap type.
func (s *Stream) delegate(a grammar.Using, base int, matched string) {
	if a.Grammar == nil {
		if matched != "" {
			s.pending = append(s.pending, Token{Offset: base, Type: a.Wrap, Value: matched})
		}
		return
	}
	sub := newStream(a.Grammar, matched)
	for {
		tok, ok := sub.Next()
		if !ok {
			return
		}
		tok.Offset += base
		if a.Wrap != nil && tok.Type == nil {
			tok.Type = a.Wrap
		}
		s.pending = append(s.pending, tok)
	}
}

// apply performs one stack transition. The stack floor is the root entry:
// popping past it is a silent no-op.
func (s *Stream) apply(t grammar.Transition) {
	switch tr := t.(type) {
	case grammar.Push:
		s.stack = append(s.stack, string(tr))
	case grammar.PushSame:
		s.stack = append(s.stack, s.stack[len(s.stack)-1])
	case grammar.Pop:
		for i := 0; i < int(tr) && len(s.stack) > 1; i++ {
			s.stack = s.stack[:len(s.stack)-1]
		}
	case grammar.Goto:
		// Pop(1) then Push as one unit. The pop floors like any other, so a
		// Goto fired at the root keeps root underneath the target.
		if len(s.stack) > 1 {
			s.stack = s.stack[:len(s.stack)-1]
		}
		s.stack = append(s.stack, string(tr))
	}
}

// Depth reports the current state-stack depth. The stack always holds at
// least the root state.
func (s *Stream) Depth() int {
	return len(s.stack)
}

// State reports the current top-of-stack state name.
func (s *Stream) State() string {
	return s.stack[len(s.stack)-1]
}
