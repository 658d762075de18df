package eval

import (
	"github.com/glyphlang/glyph/internal/bind"
	"github.com/glyphlang/glyph/internal/frame"
	"github.com/glyphlang/glyph/internal/value"
)

// ApplyFunc invokes fn with already-evaluated args, positionally bound
// to fn's non-refinement parameters in spec order — the entry point
// natives use to call a function value they hold rather than one
// named by a token in the source block (spec.md's Apply_Func_Throws,
// grounded on the teacher's apply.go ApplyFunction taking a resolved
// argument slice instead of re-walking call syntax).
func ApplyFunc(t *Task, ctx *bind.Context, fn value.Value, label value.Symbol, args []value.Value) (value.Value, bool) {
	f := fn.AsFunc()
	if f == nil {
		return value.Err(value.ErrMisc, "not a function"), true
	}

	var out value.Value
	frm := frame.Make(t.Alloc, &out, t.CallTop, fn, label, nil, 0)
	t.CallTop = frm
	t.Sink.OnCall(t.ID, value.Name(label), t.depth)

	ai := 0
	n := f.NumArgs()
	for i := 0; i < n; i++ {
		p := f.ParamAt(i)
		if p.Kind == value.REFINEMENT {
			frm.SetArg(i, value.Logic(false))
			continue
		}
		if ai < len(args) {
			frm.SetArg(i, args[ai])
			ai++
		} else {
			frm.SetArg(i, value.Unset)
		}
	}

	fl := dispatchCall(t, ctx, frm)
	t.CallTop = frm.Caller
	frm.Free(t.Alloc)
	t.Sink.OnReturn(t.ID, value.Name(label), t.depth)
	if fl.IsThrown() {
		return out, true
	}
	return out, false
}

// ApplyBlock is Apply_Block_Throws: it treats block, starting at
// index, as fn's positional argument list rather than call syntax —
// no infix lookahead, no out-of-order refinement search. When
// reduceArgs is set each argument is produced by Do_Core (so side
// effects in the block still run); otherwise each is taken literally.
// A refinement slot is set TRUE when its corresponding input is
// conditionally true, NONE otherwise; ordinary parameters that follow
// an unset refinement are themselves set NONE rather than consuming a
// block position. Once every parameter slot is filled, values still
// left unconsumed in block fail too-long — but only once the binding
// pass has completely run, so any side effects along the way have
// already happened (spec.md's Apply_Block_Throws).
func ApplyBlock(t *Task, ctx *bind.Context, fn value.Value, label value.Symbol, block *value.Block, index int, reduceArgs bool) (value.Value, bool) {
	f := fn.AsFunc()
	if f == nil {
		return value.Err(value.ErrMisc, "not a function"), true
	}

	var out value.Value
	frm := frame.Make(t.Alloc, &out, t.CallTop, fn, label, block, index)
	t.CallTop = frm
	t.Sink.OnCall(t.ID, value.Name(label), t.depth)

	abort := func(flow Flow) (value.Value, bool) {
		t.CallTop = frm.Caller
		frm.Free(t.Alloc)
		t.Sink.OnReturn(t.ID, value.Name(label), t.depth)
		return out, flow.IsThrown()
	}

	n := f.NumArgs()
	skipping := false

	next := func() (value.Value, Flow) {
		if reduceArgs {
			var v value.Value
			fl := DoCore(t, ctx, &v, block, index, true, true)
			if fl.IsThrown() {
				return v, ThrownFlag
			}
			if fl.IsEnd() {
				return value.Unset, EndFlag
			}
			index = int(fl)
			return v, Flow(index)
		}
		if index >= block.Len() {
			return value.Unset, EndFlag
		}
		v := block.At(index)
		index++
		return v, Flow(index)
	}

	for i := 0; i < n; i++ {
		param := f.ParamAt(i)

		if param.Kind == value.REFINEMENT {
			v, fl := next()
			if fl.IsThrown() {
				*frm.Out = v
				return abort(ThrownFlag)
			}
			if v.IsTruthy() {
				frm.SetArg(i, value.Logic(true))
				skipping = false
			} else {
				frm.SetArg(i, value.None)
				skipping = true
			}
			continue
		}

		if skipping {
			frm.SetArg(i, value.None)
			continue
		}

		v, fl := next()
		if fl.IsThrown() {
			*frm.Out = v
			return abort(ThrownFlag)
		}
		if fl.IsEnd() {
			return abort(fail(frm.Out, value.ErrNoArg, value.Name(paramSym(param))))
		}
		if !typeCheck(param, v) {
			return abort(fail(frm.Out, value.ErrArgType, value.Name(paramSym(param)), v))
		}
		frm.SetArg(i, v)
	}

	if index < block.Len() {
		return abort(fail(frm.Out, value.ErrTooLong, ""))
	}

	fl := dispatchCall(t, ctx, frm)
	t.CallTop = frm.Caller
	frm.Free(t.Alloc)
	t.Sink.OnReturn(t.ID, value.Name(label), t.depth)
	if fl.IsThrown() {
		return out, true
	}
	return out, false
}

// RunBlock runs block to completion as a standalone program under ctx
// — a thin, explicitly named alias over DoBlock for call sites
// (cmd/glyph) that aren't themselves inside the evaluator and want a
// self-documenting top-level entry point, distinct from Apply_Block_
// Throws's positional-argument-binding contract above.
func RunBlock(t *Task, ctx *bind.Context, block *value.Block) (value.Value, bool) {
	return DoBlock(t, ctx, block)
}
