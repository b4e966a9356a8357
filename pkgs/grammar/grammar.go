package grammar

import (
	"github.com/aledsdavies/glint/pkgs/token"
)

// Grammar is the declarative description of a lexer: named states, each with
// an ordered rule list. Rule order is part of the grammar's meaning: the
// engine takes the first rule that matches, never the longest. A Grammar must
// have a "root" state; Compile enforces this.
type Grammar struct {
	// States maps state name to its ordered rules. Entries may be Rule
	// literals or Include markers.
	States map[string][]RawRule

	// AnalyzeText optionally scores how likely this grammar is the right one
	// for a text sample. Higher means more confident; results are clamped to
	// [0,1] by the lexer shell. Nil means "no opinion" (0).
	AnalyzeText func(text string) float64
}

// RawRule is one entry in a state's rule list: either a Rule or an Include.
type RawRule interface {
	rawRule()
}

// Rule matches Pattern at the current position and runs Action, then applies
// Transitions to the state stack in order.
type Rule struct {
	Pattern     string
	Action      Action
	Transitions []Transition
}

func (Rule) rawRule() {}

// Include splices another state's rules in place of this entry. Includes are
// flattened at compile time; the engine never sees one.
type Include string

func (Include) rawRule() {}

// Action describes what a matched rule emits. Exactly one of Emit, ByGroups
// or Using.
type Action interface {
	action()
}

// Emit emits the whole match as a single token of Type. A nil Type still
// emits the matched text (as an untyped token, rendered plain by formatters)
// so that no input is ever dropped; a zero-length match emits nothing.
type Emit struct {
	Type *token.Type
}

func (Emit) action() {}

// ByGroups emits one token per capturing group, in group order. Groups that
// did not participate in the match are skipped, as are groups whose Type
// entry is nil. Match text outside any capturing group is not emitted;
// grammars must capture everything they want to keep.
type ByGroups struct {
	Types []*token.Type
}

func (ByGroups) action() {}

// Using re-lexes the matched substring with another compiled grammar and
// splices its tokens in place, offsets rebased to the outer match. If Wrap is
// non-nil, sub-tokens the delegate emitted without a type take Wrap as their
// default type.
type Using struct {
	Grammar *Compiled
	Wrap    *token.Type
}

func (Using) action() {}
