// Package path implements the path-dispatcher ABI (spec.md §4.4, §6):
// a per-value-kind callback table that Do_Core's path evaluation walks
// one selector at a time. Grounded in spirit on the teacher's
// internal/evaluator/expressions_access.go (member/index expression
// evaluation), generalized from a Go type switch over ast.Node into
// the spec's explicit per-kind callback table keyed on value.Kind.
package path

import "github.com/glyphlang/glyph/internal/value"

// Result is the outcome a Dispatcher reports for one (value, selector)
// step (spec.md §4.4).
type Result uint8

const (
	OK Result = iota // Record.Value was updated in place; continue
	SET               // perform the assignment only at end-of-path
	NONE              // terminal value is NONE
	USE               // read the terminal value from Record.Store
	BadSelect
	BadSet
	BadRange
	BadSetType
)

// Record is handed to a Dispatcher for one selector step. Value and
// Tail are mutable: a Dispatcher may advance Tail (consume extra path
// elements beyond the one selector, e.g. a slice range) and must leave
// Value holding the next current value on OK.
type Record struct {
	Value value.Value // current value; updated in place on OK
	Tail  *value.Block // remaining path tail after Selector
	Index int          // Tail's current read position

	Selector value.Value // the selector for this step
	SetVal   value.Value // value to store, for SET-paths; zero otherwise
	IsSet    bool         // true if this path evaluation is a SET-path

	Store value.Value // read by the caller on USE
}

// Dispatcher is the per-kind callback. It may read/advance Tail via
// rec.Index, read Selector and SetVal, and write Value/Store.
type Dispatcher func(rec *Record) Result

// table is indexed directly by value.Kind. Sized generously past the
// known kind count so every Kind constant in value.Kind is in range
// without a bounds check on Register; Lookup still bounds-checks
// defensively against a future out-of-range Kind.
var table [64]Dispatcher

// Register installs fn as the path dispatcher for kind, overwriting
// any previous registration. Called at boot (spec.md §6).
func Register(kind value.Kind, fn Dispatcher) {
	table[kind] = fn
}

// Lookup returns the registered Dispatcher for kind, or nil if none is
// registered (the path evaluator raises bad-path-type in that case).
func Lookup(kind value.Kind) Dispatcher {
	if int(kind) < 0 || int(kind) >= len(table) {
		return nil
	}
	return table[kind]
}
