package runtype

import "strings"

// ContextEntry is one segment of a validation path: the key at which a
// value was found and the type it was checked against.
type ContextEntry struct {
	Key  string
	Type Type
}

func NewContextEntry(key string, t Type) ContextEntry {
	return ContextEntry{Key: key, Type: t}
}

func (e ContextEntry) String() string {
	if e.Key == "" {
		return e.Type.Name()
	}
	return e.Key + ": " + e.Type.Name()
}

// Context is the path from the root value to the value being validated.
// Its length is the depth from the root.
type Context []ContextEntry

// DefaultContext seeds validation of t at the root.
func DefaultContext(t Type) Context {
	return Context{NewContextEntry("", t)}
}

// Append returns a new context extended by (key, t). c is never modified
// so sibling contexts do not share storage.
func (c Context) Append(key string, t Type) Context {
	res := make(Context, len(c), len(c)+1)
	copy(res, c)
	return append(res, NewContextEntry(key, t))
}

// Path joins the entries with "/".
func (c Context) Path() string {
	parts := make([]string, len(c))
	for i := range c {
		parts[i] = c[i].String()
	}
	return strings.Join(parts, "/")
}
