package frame

import "github.com/glyphlang/glyph/internal/value"

// Frame is a call frame: the record created per function invocation
// (spec.md §3, §4.2). Its Args cells are either chunk-allocated (the
// common case) or, for a CLOSURE whose context has been reified
// (handed to the GC as a first-class object), owned by that managed
// array instead — Handle is nil in that case and Free is a no-op.
type Frame struct {
	Caller *Frame       // caller's frame, nil for the outermost call
	Func   value.Value  // the function value being invoked
	Label  value.Symbol // the word it was invoked through, 0 if none

	Block *value.Block // source block of the call site
	Index int           // index within Block where the call began

	Args   *value.Block // argument cells, length == Func.AsFunc().NumArgs()
	handle *Handle       // nil if Args is owned by a reified context instead

	Out *value.Value // output slot; must not lie inside a data stack

	// ExitFrom marks this frame as the target of a non-local exit
	// (e.g. a function-level RETURN). No code in this module sets or
	// reads it; a throw unwinds every frame until a trap catches it.
	ExitFrom bool
}

// Make carves a fresh argument-cell chunk from alloc and returns a
// Frame wired to it. out must not be a cell inside the data stack
// (spec.md §4.3 Inputs contract) — callers are trusted to enforce
// this, mirroring the teacher's and the original's undocumented
// caller contract rather than re-checking it on every call.
func Make(alloc *Allocator, out *value.Value, caller *Frame, fn value.Value, label value.Symbol, block *value.Block, index int) *Frame {
	f := fn.AsFunc()
	n := f.NumArgs()
	var args *value.Block
	var h *Handle
	if n > 0 {
		args, h = alloc.Push(n)
	} else {
		args = value.NewBlock(nil)
	}
	return &Frame{
		Caller: caller,
		Func:   fn,
		Label:  label,
		Block:  block,
		Index:  index,
		Args:   args,
		handle: h,
		Out:    out,
	}
}

// MakeManaged wires a Frame to an already-allocated, GC-owned argument
// array (e.g. a reified CLOSURE context) instead of a chunk. Free is a
// no-op for such a frame: the GC owns the array's lifetime.
func MakeManaged(out *value.Value, caller *Frame, fn value.Value, label value.Symbol, block *value.Block, index int, args *value.Block) *Frame {
	return &Frame{
		Caller: caller,
		Func:   fn,
		Label:  label,
		Block:  block,
		Index:  index,
		Args:   args,
		Out:    out,
	}
}

// Free releases the frame's chunk, if it owns one, back to alloc.
// Called by internal/eval once the callee has returned or a throw has
// propagated past this frame.
func (f *Frame) Free(alloc *Allocator) {
	if f.handle != nil {
		alloc.Drop(f.handle, nil)
		f.handle = nil
	}
}

// NumArgs mirrors Func.NumArgs for convenience.
func (f *Frame) NumArgs() int { return f.Args.Len() }

func (f *Frame) Arg(i int) value.Value    { return f.Args.At(i) }
func (f *Frame) SetArg(i int, v value.Value) {
	if i >= 0 && i < f.Args.Len() {
		f.Args.Cells()[i] = v
	}
}
