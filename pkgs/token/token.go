package token

import (
	"strings"
	"sync"
)

// Type is one node in the token-type taxonomy. Types form a tree rooted at
// Root; a type's dotted path (e.g. "Keyword.Constant") identifies it. Types
// are interned: Get returns the same *Type for the same path every time, so
// == compares by path identity.
type Type struct {
	path     string
	segments []string
	parent   *Type
}

var (
	internMu sync.Mutex
	interned = map[string]*Type{}

	// Root is the ancestor of every token type. It has an empty path.
	Root = &Type{}
)

// Get returns the canonical Type for the given path segments, creating it and
// any missing ancestors on first use. Get() with no segments returns Root.
func Get(segments ...string) *Type {
	if len(segments) == 0 {
		return Root
	}
	path := strings.Join(segments, ".")

	internMu.Lock()
	defer internMu.Unlock()
	return getLocked(path, segments)
}

func getLocked(path string, segments []string) *Type {
	if t, ok := interned[path]; ok {
		return t
	}
	var parent *Type
	if len(segments) == 1 {
		parent = Root
	} else {
		parentSegs := segments[:len(segments)-1]
		parent = getLocked(strings.Join(parentSegs, "."), parentSegs)
	}
	t := &Type{
		path:     path,
		segments: append([]string(nil), segments...),
		parent:   parent,
	}
	interned[path] = t
	return t
}

// Parse converts a dotted path like "Token.Keyword.Reserved" (the leading
// "Token" is optional) into its canonical Type.
func Parse(s string) *Type {
	if s == "" || s == "Token" {
		return Root
	}
	parts := strings.Split(s, ".")
	if parts[0] == "Token" {
		parts = parts[1:]
	}
	return Get(parts...)
}

// Sub returns the child of t named name.
func (t *Type) Sub(name string) *Type {
	return Get(append(append([]string(nil), t.segments...), name)...)
}

// Parent returns the immediate supertype, or nil for Root.
func (t *Type) Parent() *Type {
	return t.parent
}

// Depth returns the number of path segments (0 for Root).
func (t *Type) Depth() int {
	return len(t.segments)
}

// SubtypeOf reports whether t is other or a descendant of other. Every type
// is a subtype of Root; Root is a subtype of nothing but itself.
func (t *Type) SubtypeOf(other *Type) bool {
	if other == nil {
		return false
	}
	n := t
	for n != nil {
		if n == other {
			return true
		}
		n = n.parent
	}
	return false
}

// String renders the full dotted path, "Token" for the root, matching the
// conventional display form.
func (t *Type) String() string {
	if t == nil || t.path == "" {
		return "Token"
	}
	return "Token." + t.path
}

// Path returns the dotted path without the "Token." prefix; empty for Root.
func (t *Type) Path() string {
	if t == nil {
		return ""
	}
	return t.path
}

// ShortName returns the conventional abbreviated class name for t (e.g. "k"
// for Keyword, "s2" for String.Double), falling back to the nearest ancestor
// that has one. Root and Text map to "".
func (t *Type) ShortName() string {
	for n := t; n != nil; n = n.parent {
		if short, ok := shortNames[n]; ok {
			return short
		}
	}
	return ""
}
