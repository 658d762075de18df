package eval

import (
	"github.com/glyphlang/glyph/internal/bind"
	"github.com/glyphlang/glyph/internal/value"
)

// Reduce evaluates every expression in block in turn and collects
// their values into a freshly made Block (spec.md §4.1's data-stack
// gather pattern: each value is pushed, then popped off in one shot at
// the end so a thrown value mid-reduce leaves the stack balanced).
func Reduce(t *Task, ctx *bind.Context, block *value.Block) (*value.Block, bool) {
	dspStart := t.Stack.DSP()
	index := 0
	for index < block.Len() {
		var v value.Value
		fl := DoCore(t, ctx, &v, block, index, true, true)
		if fl.IsThrown() {
			t.Stack.DropTo(dspStart)
			return value.MakeBlock(v), true
		}
		if fl.IsEnd() {
			break
		}
		index = int(fl)
		if err := t.Stack.Push(v); err != nil {
			t.Stack.DropTo(dspStart)
			return nil, true
		}
	}
	return t.Stack.PopToArray(dspStart), false
}

// ReduceOnly behaves like Reduce but copies through untouched any WORD
// or PATH-family token whose head name appears in skip, rather than
// evaluating it (spec.md §4.5 "reduce_only": "WORDs and PATHs whose
// head name appears in words_to_skip are copied through untouched").
func ReduceOnly(t *Task, ctx *bind.Context, block *value.Block, skip []value.Symbol) (*value.Block, bool) {
	dspStart := t.Stack.DSP()
	index := 0
	for index < block.Len() {
		tok := block.At(index)
		if headNameIn(tok, skip) {
			if err := t.Stack.Push(tok); err != nil {
				t.Stack.DropTo(dspStart)
				return nil, true
			}
			index++
			continue
		}
		var v value.Value
		fl := DoCore(t, ctx, &v, block, index, true, true)
		if fl.IsThrown() {
			t.Stack.DropTo(dspStart)
			return value.MakeBlock(v), true
		}
		if fl.IsEnd() {
			break
		}
		index = int(fl)
		if err := t.Stack.Push(v); err != nil {
			t.Stack.DropTo(dspStart)
			return nil, true
		}
	}
	return t.Stack.PopToArray(dspStart), false
}

// headNameIn reports whether tok is a WORD-family value naming a
// symbol in skip, or a PATH-family value whose head word names one.
func headNameIn(tok value.Value, skip []value.Symbol) bool {
	var head value.Symbol
	switch {
	case tok.Kind.IsAnyWord():
		head = tok.Sym
	case tok.Kind.IsAnyPath():
		p := tok.AsPath()
		if p == nil || p.Len() == 0 {
			return false
		}
		h := p.At(0)
		if h.Kind != value.WORD {
			return false
		}
		head = h.Sym
	default:
		return false
	}
	for _, s := range skip {
		if s == head {
			return true
		}
	}
	return false
}

// ReduceNoSet behaves like Reduce but passes SET_WORD tokens through
// literally instead of performing the assignment — used by natives
// that want to reduce a spec block without executing its side effects
// (spec.md §4.1 "reduce/no-set").
func ReduceNoSet(t *Task, ctx *bind.Context, block *value.Block) (*value.Block, bool) {
	dspStart := t.Stack.DSP()
	for i := 0; i < block.Len(); i++ {
		tok := block.At(i)
		if tok.Kind == value.SET_WORD {
			if err := t.Stack.Push(tok); err != nil {
				t.Stack.DropTo(dspStart)
				return nil, true
			}
			continue
		}
		var v value.Value
		fl := DoCore(t, ctx, &v, block, i, true, true)
		if fl.IsThrown() {
			t.Stack.DropTo(dspStart)
			return value.MakeBlock(v), true
		}
		if fl.IsEnd() {
			break
		}
		i = int(fl) - 1 // loop's i++ advances to the real next index
		if err := t.Stack.Push(v); err != nil {
			t.Stack.DropTo(dspStart)
			return nil, true
		}
	}
	return t.Stack.PopToArray(dspStart), false
}

// Compose walks block, leaving ordinary values untouched. Each nested
// PAREN is reduced to a single value and, by default, spliced into the
// result in place when that value is itself a BLOCK; only, when set,
// disables splicing and inserts the composed value as a single
// element instead (spec.md's enrichment of the reduce family,
// grounded on Rebol's compose semantics absent from spec.md's base
// operation set but present as a natural companion to reduce — see
// SPEC_FULL.md §2; the round-trip property `compose/only [(reverse
// [a b])]` = `[[b a]]` in spec.md §8 requires exactly this knob). When
// deep is set, nested BLOCK values (not just PARENs) are themselves
// recursively composed rather than copied through untouched.
func Compose(t *Task, ctx *bind.Context, block *value.Block, deep, only bool) (*value.Block, bool) {
	dspStart := t.Stack.DSP()
	for i := 0; i < block.Len(); i++ {
		tok := block.At(i)

		if tok.Kind == value.PAREN {
			v, thr := DoBlock(t, ctx, tok.AsBlock())
			if thr {
				t.Stack.DropTo(dspStart)
				return value.MakeBlock(v), true
			}
			if !only && v.Kind == value.BLOCK {
				for _, cell := range v.AsBlock().Cells() {
					if err := t.Stack.Push(cell); err != nil {
						t.Stack.DropTo(dspStart)
						return nil, true
					}
				}
			} else if !v.IsUnset() {
				if err := t.Stack.Push(v); err != nil {
					t.Stack.DropTo(dspStart)
					return nil, true
				}
			}
			continue
		}

		if deep && tok.Kind == value.BLOCK {
			sub, thr := Compose(t, ctx, tok.AsBlock(), deep, only)
			if thr {
				t.Stack.DropTo(dspStart)
				return sub, true
			}
			if err := t.Stack.Push(value.BlockVal(value.BLOCK, sub)); err != nil {
				t.Stack.DropTo(dspStart)
				return nil, true
			}
			continue
		}

		if err := t.Stack.Push(tok); err != nil {
			t.Stack.DropTo(dspStart)
			return nil, true
		}
	}
	return t.Stack.PopToArray(dspStart), false
}
