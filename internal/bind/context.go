// Package bind implements word binding: contexts (lexical scopes) that
// hold the current value of every word the evaluator can look up.
// Grounded on the teacher's internal/evaluator/environment.go
// (Environment{store map[string]Object, outer *Environment}), renamed
// to match the spec's vocabulary and de-synchronized: a Context is
// per-task state touched by exactly one evaluator (spec.md §5), unlike
// the teacher's Environment which guards every access with a
// sync.RWMutex because funxy's VM can run closures across goroutines.
package bind

import "github.com/glyphlang/glyph/internal/value"

// Context is a lexical scope: a word->value store with an optional
// outer (enclosing) scope for lookup fallthrough.
type Context struct {
	store map[value.Symbol]value.Value
	outer *Context
}

// New creates an empty top-level Context.
func New() *Context {
	return &Context{store: make(map[value.Symbol]value.Value)}
}

// NewEnclosed creates a Context whose lookups fall through to outer
// when a word is not bound locally — used for function call scopes
// and PAREN/block-local shadowing.
func NewEnclosed(outer *Context) *Context {
	return &Context{store: make(map[value.Symbol]value.Value), outer: outer}
}

// Get looks up sym, searching outer scopes if not found locally.
func (c *Context) Get(sym value.Symbol) (value.Value, bool) {
	if c == nil {
		return value.Value{}, false
	}
	if v, ok := c.store[sym]; ok {
		return v, true
	}
	return c.outer.Get(sym)
}

// Set binds sym to v in this scope (creating or overwriting a local
// binding); it never reaches into an outer scope.
func (c *Context) Set(sym value.Symbol, v value.Value) value.Value {
	c.store[sym] = v
	return v
}

// Update assigns v to the nearest scope (this one or an outer one)
// where sym is already bound, without creating a new binding. It
// reports whether such a scope was found.
func (c *Context) Update(sym value.Symbol, v value.Value) bool {
	if c == nil {
		return false
	}
	if _, ok := c.store[sym]; ok {
		c.store[sym] = v
		return true
	}
	return c.outer.Update(sym, v)
}

// Outer returns the enclosing Context, or nil at the top level.
func (c *Context) Outer() *Context { return c.outer }
