package eval

import (
	"github.com/glyphlang/glyph/internal/bind"
	"github.com/glyphlang/glyph/internal/frame"
	"github.com/glyphlang/glyph/internal/value"
)

// Native is the dispatcher signature for NATIVE/ACTION/COMMAND/ROUTINE
// functions (spec.md §4.2 Dispatch_Call). internal/natives builds
// value.Func.Dispatch values of this type; dispatchCall below is the
// only place that type-asserts back to it, keeping internal/value and
// internal/natives from needing to know about each other.
type Native func(c *Call) (value.Value, bool)

// Call is the narrow view a Native gets of its own invocation: its
// bound arguments and a handle back into the evaluator for natives
// that must recurse (reduce, compose, apply).
type Call struct {
	frm  *frame.Frame
	task *Task
	ctx  *bind.Context
}

func (c *Call) NumArgs() int             { return c.frm.NumArgs() }
func (c *Call) Arg(i int) value.Value    { return c.frm.Arg(i) }
func (c *Call) Task() *Task              { return c.task }
func (c *Call) Ctx() *bind.Context       { return c.ctx }
func (c *Call) Label() value.Symbol      { return c.frm.Label }

// dispatchCall invokes frm's callee: a Native dispatcher for the
// primitive kinds, or a fresh enclosed Context + DoBlock for the
// user-defined kinds (spec.md §4.2).
func dispatchCall(t *Task, ctx *bind.Context, frm *frame.Frame) Flow {
	f := frm.Func.AsFunc()

	switch frm.Func.Kind {
	case value.NATIVE, value.ACTION, value.COMMAND, value.ROUTINE:
		fn, ok := f.Dispatch.(Native)
		if !ok {
			return fail(frm.Out, value.ErrMisc, "function has no dispatcher")
		}
		result, thrown := fn(&Call{frm: frm, task: t, ctx: ctx})
		*frm.Out = result
		if thrown {
			return ThrownFlag
		}
		return Flow(0)

	case value.CLOSURE, value.FUNCTION, value.REBCODE:
		outer, _ := f.Env.(*bind.Context)
		callCtx := bind.NewEnclosed(outer)
		n := f.NumArgs()
		for i := 0; i < n; i++ {
			p := f.ParamAt(i)
			callCtx.Set(p.Sym, frm.Arg(i))
		}
		result, thrown := DoBlock(t, callCtx, f.Body)
		*frm.Out = result
		if thrown {
			return ThrownFlag
		}
		return Flow(0)

	default:
		return fail(frm.Out, value.ErrMisc, "not callable")
	}
}
