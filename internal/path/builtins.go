package path

import "github.com/glyphlang/glyph/internal/value"

// contextLike is the narrow surface internal/bind.Context exposes;
// declared here (rather than importing internal/bind) so this leaf
// package stays free of a dependency edge back up toward internal/eval,
// which itself depends on internal/bind. *bind.Context satisfies it
// directly, so dispatchObject handles an OBJECT value wrapping a
// context without any bridging code.
type contextLike interface {
	Get(value.Symbol) (value.Value, bool)
	Set(value.Symbol, value.Value) value.Value
}

// RegisterBuiltins installs the path dispatchers for BLOCK (selector
// is a 1-based INTEGER index, Rebol-style) and OBJECT (selector is a
// WORD naming a field). Called once at boot by internal/eval.
func RegisterBuiltins() {
	Register(value.BLOCK, dispatchBlock)
	Register(value.PAREN, dispatchBlock)
	Register(value.OBJECT, dispatchObject)
}

func dispatchBlock(rec *Record) Result {
	blk := rec.Value.AsBlock()
	if rec.Selector.Kind != value.INTEGER {
		return BadSelect
	}
	i := int(rec.Selector.AsInteger()) - 1 // path indices are 1-based
	if i < 0 || i >= blk.Len() {
		if rec.IsSet {
			return BadRange
		}
		rec.Value = value.None
		return NONE
	}
	if rec.IsSet {
		blk.Cells()[i] = rec.SetVal
		rec.Value = rec.SetVal
		return SET
	}
	rec.Value = blk.At(i)
	return OK
}

func dispatchObject(rec *Record) Result {
	obj, ok := rec.Value.Obj.(contextLike)
	if !ok {
		return BadSelect
	}
	if !rec.Selector.Kind.IsAnyWord() {
		return BadSelect
	}
	if rec.IsSet {
		obj.Set(rec.Selector.Sym, rec.SetVal)
		rec.Value = rec.SetVal
		return SET
	}
	v, found := obj.Get(rec.Selector.Sym)
	if !found {
		return BadSelect
	}
	rec.Value = v
	return OK
}
