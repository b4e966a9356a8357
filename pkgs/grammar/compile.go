package grammar

import (
	"regexp"

	"github.com/aledsdavies/glint/internal/logging"
	glinterrors "github.com/aledsdavies/glint/pkgs/errors"
)

var log = logging.DefaultLogger.WithField(logging.Subsys, "grammar")

// RootState is the state every grammar starts in.
const RootState = "root"

// CompiledRule is one resolved rule: an anchored regex plus its action and
// transitions. Immutable after Compile.
type CompiledRule struct {
	Match       *regexp.Regexp
	Action      Action
	Transitions []Transition
}

// Compiled is the executable form of a Grammar: every Include flattened,
// every pattern compiled, every state reference checked. A Compiled holds no
// run state and is safe to share across concurrent lexer runs.
type Compiled struct {
	States  map[string][]CompiledRule
	Analyze func(text string) float64
}

// compilation tracks one Compile call: the flattened-state cache and the
// set of states currently being expanded, for cycle detection.
type compilation struct {
	src       *Grammar
	done      map[string][]CompiledRule
	expanding map[string]bool
	trail     []string
}

// Compile turns a Grammar into its executable form. All grammar problems
// surface here, before any text is lexed: a pattern that does not compile
// (INVALID_PATTERN), a Push/Goto/Include target that does not exist
// (UNKNOWN_STATE), or an include cycle (GRAMMAR_CYCLE).
func Compile(g *Grammar) (*Compiled, error) {
	if _, ok := g.States[RootState]; !ok {
		return nil, glinterrors.New(glinterrors.ErrUnknownState, `grammar has no "root" state`).
			WithContext("state", RootState)
	}

	c := &compilation{
		src:       g,
		done:      map[string][]CompiledRule{},
		expanding: map[string]bool{},
	}
	out := &Compiled{
		States:  make(map[string][]CompiledRule, len(g.States)),
		Analyze: g.AnalyzeText,
	}
	for name := range g.States {
		rules, err := c.flatten(name)
		if err != nil {
			return nil, err
		}
		out.States[name] = rules
	}

	ruleCount := 0
	for _, rules := range out.States {
		ruleCount += len(rules)
	}
	log.WithField("states", len(out.States)).WithField("rules", ruleCount).
		Debug("Compiled grammar")
	return out, nil
}

// MustCompile is Compile for static grammar tables; it panics on error.
func MustCompile(g *Grammar) *Compiled {
	c, err := Compile(g)
	if err != nil {
		panic(err)
	}
	return c
}

// flatten produces the compiled rule list for one state, recursively inlining
// Include entries.
func (c *compilation) flatten(state string) ([]CompiledRule, error) {
	if rules, ok := c.done[state]; ok {
		return rules, nil
	}
	if c.expanding[state] {
		return nil, glinterrors.NewGrammarCycleError(append(append([]string(nil), c.trail...), state))
	}
	c.expanding[state] = true
	c.trail = append(c.trail, state)
	defer func() {
		delete(c.expanding, state)
		c.trail = c.trail[:len(c.trail)-1]
	}()

	var out []CompiledRule
	for i, raw := range c.src.States[state] {
		switch r := raw.(type) {
		case Include:
			if _, ok := c.src.States[string(r)]; !ok {
				return nil, glinterrors.NewUnknownStateError(string(r), state, i)
			}
			included, err := c.flatten(string(r))
			if err != nil {
				return nil, err
			}
			out = append(out, included...)
		case Rule:
			compiled, err := c.compileRule(state, i, r)
			if err != nil {
				return nil, err
			}
			out = append(out, compiled)
		}
	}
	c.done[state] = out
	return out, nil
}

func (c *compilation) compileRule(state string, index int, r Rule) (CompiledRule, error) {
	// Anchored at the current position, multiline so ^ and $ keep their
	// line-oriented meaning. These flags are fixed by the engine, not
	// configurable per rule.
	re, err := regexp.Compile(`(?m)\A(?:` + r.Pattern + `)`)
	if err != nil {
		return CompiledRule{}, glinterrors.NewInvalidPatternError(state, r.Pattern, err)
	}
	for _, t := range r.Transitions {
		var target string
		switch tr := t.(type) {
		case Push:
			target = string(tr)
		case Goto:
			target = string(tr)
		default:
			continue
		}
		if _, ok := c.src.States[target]; !ok {
			return CompiledRule{}, glinterrors.NewUnknownStateError(target, state, index)
		}
	}
	return CompiledRule{
		Match:       re,
		Action:      r.Action,
		Transitions: r.Transitions,
	}, nil
}
