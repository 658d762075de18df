package value

// Func is the shared payload for every callable Kind (NATIVE, ACTION,
// COMMAND, CLOSURE, FUNCTION, ROUTINE, REBCODE). Which fields are
// meaningful depends on Kind: CLOSURE/FUNCTION/REBCODE carry Body and
// Env; NATIVE/ACTION/COMMAND/ROUTINE carry Dispatch.
//
// Dispatch and Env are declared `any` rather than concrete types to
// keep this leaf package free of a dependency on internal/frame (the
// call-frame type) or internal/bind (the context/environment type) —
// both of which depend on Value. internal/eval performs the type
// assertion back to the concrete dispatcher signature it defines.
type Func struct {
	Name Symbol // declared name, for error messages; 0 if anonymous
	Spec *Block // parameter spec: WORD/GET_WORD/LIT_WORD/REFINEMENT cells

	Body *Block // CLOSURE/FUNCTION/REBCODE body block
	Env  any    // closure environment captured at definition time

	Dispatch any // NATIVE/ACTION/COMMAND/ROUTINE opaque dispatcher
}

func FuncValue(kind Kind, f *Func, flags FuncFlag) Value {
	return Value{Kind: kind, Flags: flags, Obj: f}
}

func (v Value) AsFunc() *Func {
	f, _ := v.Obj.(*Func)
	return f
}

func (v Value) IsInfix() bool { return v.Flags&FlagInfix != 0 }
func (v Value) IsRedo() bool  { return v.Flags&FlagRedo != 0 }

// NumArgs counts every parameter cell in the spec, REFINEMENT cells
// included, i.e. the size of the argument-cell array Make_Call must
// carve.
func (f *Func) NumArgs() int {
	if f == nil || f.Spec == nil {
		return 0
	}
	return f.Spec.Len()
}

// ParamAt returns the spec cell for argument slot i.
func (f *Func) ParamAt(i int) Value {
	return f.Spec.At(i)
}
