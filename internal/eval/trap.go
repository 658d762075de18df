package eval

// Trap captures a Task's data-stack depth and frame-allocator chunk
// identity so a caller can restore the data stack after a
// sub-evaluation throws past it and check that the chunk top is back
// where it was (spec.md §9 "chunk balance"/"stack balance" properties),
// mirroring the original's PUSH_STATE/Saved_State used around a
// catchable trap boundary.
type Trap struct {
	dsp   int
	chunk any
}

// Mark records the current balance point.
func Mark(t *Task) Trap {
	return Trap{dsp: t.Stack.DSP(), chunk: t.Alloc.TopIdentity()}
}

// Restore truncates the data stack back to the marked depth. It does
// not attempt to rewind the frame allocator: every Frame created after
// the mark must already have been Free'd by the unwinding call chain
// (frame.Allocator.Drop enforces LIFO order and panics otherwise,
// which is the intended signal that an unwind path leaked a frame).
func (tr Trap) Restore(t *Task) {
	t.Stack.DropTo(tr.dsp)
}

// Balanced reports whether the allocator's top chunk identity matches
// what it was at Mark — used by tests asserting the "chunk balance"
// property rather than by the evaluator itself.
func (tr Trap) Balanced(t *Task) bool {
	return t.Alloc.TopIdentity() == tr.chunk
}
