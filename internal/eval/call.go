package eval

import (
	"github.com/glyphlang/glyph/internal/bind"
	"github.com/glyphlang/glyph/internal/frame"
	"github.com/glyphlang/glyph/internal/value"
)

// callFunction fulfills fn's arguments starting at block[argsIndex]
// and dispatches the call, writing the result into *out. It returns
// the index just past the consumed arguments, or ThrownFlag.
//
// Grounded on c-do.c's do_function_args: the parameter-spec walk binds
// WORD params by recursive evaluation, GET_WORD params literally, and
// LIT_WORD params literally unless the next token is itself a PAREN/
// GET_WORD/GET_PATH (which are evaluated so `'foo` can still accept a
// computed value).
//
// REFINEMENT params are bound in two passes rather than by the
// original's re-entrant "seek and jump forward" walk: first,
// refinements is matched against the spec (spec.md §4.3 step 3,
// "search the spec for the named refinement") to produce a per-param
// requested set, raising *bad-refine*/*no-refine* on a bad tail entry
// before any argument is evaluated; then the spec is walked once,
// strictly in declaration order, so a requested refinement's own
// parameters are always bound from the call block in spec order no
// matter where the refinement appeared in the path's tail. This keeps
// the stated ordering guarantee (spec.md §5: "arguments are fulfilled
// in spec-declaration order, even when refinements bind out of order
// at the call site") literally true, and makes the "refinement order
// independence" property (spec.md §8) hold by construction: `f/x/y`
// and `f/y/x` given the same trailing values always bind x's and y's
// parameters identically, since only set membership — never position
// in the tail — affects the walk. Parameters following a refinement
// that was not requested are set NONE without consuming a block
// position, matching Apply_Block_Throws's treatment of the same case
// (spec.md §4.6).
func callFunction(t *Task, ctx *bind.Context, out *value.Value, block *value.Block, argsIndex int, fn value.Value, label value.Symbol, refinements *value.Block) Flow {
	leadingArg := *out // only meaningful when fn.IsInfix()

	for {
		f := fn.AsFunc()
		if f == nil {
			return fail(out, value.ErrMisc, "not a function")
		}
		n := f.NumArgs()
		var frm *frame.Frame
		if fn.Kind == value.CLOSURE {
			// A CLOSURE's locals must survive past its own return (a
			// closure can hand out a function that still closes over
			// them), so its args live in a GC-owned array instead of
			// the chunk stack (spec.md §3: "either chunk-allocated or
			// owned by a reified context"), matching the durable-vs-
			// transient split the original's m-stacks.c documents for
			// CLOSURE! vs FUNCTION!.
			args := value.NewBlock(make([]value.Value, n))
			frm = frame.MakeManaged(out, t.CallTop, fn, label, block, argsIndex, args)
		} else {
			frm = frame.Make(t.Alloc, out, t.CallTop, fn, label, block, argsIndex)
		}
		t.CallTop = frm
		t.Sink.OnCall(t.ID, value.Name(label), t.depth)

		index := argsIndex
		paramI := 0
		infix := fn.IsInfix()

		abort := func(flow Flow) Flow {
			t.CallTop = frm.Caller
			frm.Free(t.Alloc)
			t.Sink.OnReturn(t.ID, value.Name(label), t.depth)
			return flow
		}

		if infix {
			if n == 0 {
				return abort(fail(out, value.ErrMisc, "infix function takes no arguments"))
			}
			param0 := f.ParamAt(0)
			if !typeCheck(param0, leadingArg) {
				return abort(fail(out, value.ErrArgType, value.Name(label), leadingArg))
			}
			frm.SetArg(0, leadingArg)
			paramI = 1
		}

		requested := make([]bool, n)
		for j := 0; refinements != nil && j < refinements.Len(); j++ {
			next := refinements.At(j)
			if next.Kind != value.WORD {
				return abort(fail(out, value.ErrBadRefine, ""))
			}
			found := -1
			for k := 0; k < n; k++ {
				pk := f.ParamAt(k)
				if pk.Kind == value.REFINEMENT && pk.Sym == next.Sym {
					found = k
					break
				}
			}
			if found < 0 {
				return abort(fail(out, value.ErrNoRefine, value.Name(next.Sym)))
			}
			requested[found] = true
		}

		active := true // whether the enclosing refinement group (if any) was requested
		for paramI < n {
			param := f.ParamAt(paramI)
			switch param.Kind {
			case value.WORD:
				if !active {
					frm.SetArg(paramI, value.None)
					paramI++
					continue
				}
				var arg value.Value
				fl := DoCore(t, ctx, &arg, block, index, true, !infix)
				if fl.IsThrown() {
					*out = arg
					return abort(ThrownFlag)
				}
				if fl.IsEnd() {
					return abort(fail(out, value.ErrNoArg, value.Name(paramSym(param))))
				}
				index = int(fl)
				if !typeCheck(param, arg) {
					return abort(fail(out, value.ErrArgType, value.Name(paramSym(param)), arg))
				}
				frm.SetArg(paramI, arg)
				paramI++

			case value.GET_WORD:
				if !active {
					frm.SetArg(paramI, value.None)
					paramI++
					continue
				}
				var arg value.Value
				if index < block.Len() {
					arg = block.At(index)
					index++
				} else {
					arg = value.Unset
				}
				if !typeCheck(param, arg) {
					return abort(fail(out, value.ErrArgType, value.Name(paramSym(param)), arg))
				}
				frm.SetArg(paramI, arg)
				paramI++

			case value.LIT_WORD:
				if !active {
					frm.SetArg(paramI, value.None)
					paramI++
					continue
				}
				var arg value.Value
				tok := block.At(index)
				if index < block.Len() && (tok.Kind == value.PAREN || tok.Kind == value.GET_WORD || tok.Kind == value.GET_PATH) {
					fl := DoCore(t, ctx, &arg, block, index, true, false)
					if fl.IsThrown() {
						*out = arg
						return abort(ThrownFlag)
					}
					if !fl.IsEnd() {
						index = int(fl)
					}
				} else if index < block.Len() {
					arg = tok
					index++
				} else {
					arg = value.Unset
				}
				if !typeCheck(param, arg) {
					return abort(fail(out, value.ErrArgType, value.Name(paramSym(param)), arg))
				}
				frm.SetArg(paramI, arg)
				paramI++

			case value.REFINEMENT:
				active = requested[paramI]
				frm.SetArg(paramI, value.Logic(active))
				paramI++

			default:
				return abort(fail(out, value.ErrInvalidArg, ""))
			}
		}

		fl := dispatchCall(t, ctx, frm)
		t.CallTop = frm.Caller
		frm.Free(t.Alloc)
		t.Sink.OnReturn(t.ID, value.Name(label), t.depth)
		if fl.IsThrown() {
			return ThrownFlag
		}

		if out.Kind.IsAnyFunction() && out.IsRedo() {
			if out.IsInfix() {
				return fail(out, value.ErrBadEvaltype, "")
			}
			fn = *out
			label = 0
			refinements = nil
			argsIndex = index
			continue
		}
		return Flow(index)
	}
}

func paramSym(param value.Value) value.Symbol { return param.Sym }
