package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// Transition mutates the engine's state stack after a rule matches.
// One of Push, Pop, PushSame, Goto.
type Transition interface {
	transition()
}

// Push appends the named state to the stack.
type Push string

func (Push) transition() {}

// Pop removes up to N entries from the stack. Popping past the root is a
// silent no-op: the stack never goes below one entry.
type Pop int

func (Pop) transition() {}

// PushSame duplicates the current top-of-stack state (the "#push" shorthand).
type PushSame struct{}

func (PushSame) transition() {}

// Goto replaces the top-of-stack state: a Pop(1) and a Push as one unit
// (the "#pop#push:state" shorthand).
type Goto string

func (Goto) transition() {}

// ParseDirective converts the string shorthand used by grammar tables into a
// structured Transition:
//
//	"#pop"            Pop(1)
//	"#pop:3"          Pop(3)
//	"#push"           PushSame
//	"#pop#push:other" Goto("other")
//	"other"           Push("other")
//
// Parsing happens once when a grammar is authored, never in the match loop.
func ParseDirective(s string) (Transition, error) {
	switch {
	case s == "#pop":
		return Pop(1), nil
	case s == "#push":
		return PushSame{}, nil
	case strings.HasPrefix(s, "#pop#push:"):
		target := strings.TrimPrefix(s, "#pop#push:")
		if target == "" {
			return nil, fmt.Errorf("directive %q has no target state", s)
		}
		return Goto(target), nil
	case strings.HasPrefix(s, "#pop:"):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "#pop:"))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("directive %q has no valid pop count", s)
		}
		return Pop(n), nil
	case strings.HasPrefix(s, "#"):
		return nil, fmt.Errorf("unknown directive %q", s)
	default:
		return Push(s), nil
	}
}

// To parses directive shorthands into a Transition slice, panicking on a
// malformed directive. Intended for static grammar tables where a bad
// directive is a programming error.
func To(directives ...string) []Transition {
	out := make([]Transition, len(directives))
	for i, d := range directives {
		t, err := ParseDirective(d)
		if err != nil {
			panic(err)
		}
		out[i] = t
	}
	return out
}
