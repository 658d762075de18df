package eval

import (
	"github.com/glyphlang/glyph/internal/bind"
	"github.com/glyphlang/glyph/internal/path"
	"github.com/glyphlang/glyph/internal/value"
)

// evalPath walks p one selector at a time through internal/path's
// dispatch table, resolving the head word (if any) against ctx first
// (spec.md §4.4). setVal, if non-nil, is stored at the path's final
// step (a SET-path).
//
// The walk stops as soon as the current value becomes a function: per
// spec.md §9 open question 2, a single-element path (just the head, no
// selectors) also skips the walk entirely and returns the head value
// directly, matching the original's behavior of never dispatching a
// bare one-element path. Whatever selectors remain unconsumed when the
// walk stops are returned as tail — the refinement list for the
// ensuing call, if the terminal value turns out to be a function.
func evalPath(t *Task, ctx *bind.Context, p *value.Block, setVal *value.Value) (value.Value, *value.Block, value.Symbol, bool) {
	var current value.Value
	var headSym value.Symbol

	head := p.At(0)
	if head.Kind == value.WORD {
		headSym = head.Sym
		v, ok := ctx.Get(headSym)
		if !ok {
			return value.Err(value.ErrNoValue, value.Name(headSym)), p.Slice(p.Len()), 0, true
		}
		current = v
	} else {
		current = head
	}

	if p.Len() <= 1 {
		return current, p.Slice(p.Len()), headSym, false
	}

	i := 1
	for i < p.Len() && !current.Kind.IsAnyFunction() {
		selTok := p.At(i)
		var selector value.Value
		switch selTok.Kind {
		case value.GET_WORD:
			v, _ := ctx.Get(selTok.Sym)
			selector = v
		case value.PAREN:
			v, thr := DoBlock(t, ctx, selTok.AsBlock())
			if thr {
				return v, p.Slice(i), headSym, true
			}
			selector = v
		default:
			selector = selTok
		}

		dispatcher := path.Lookup(current.Kind)
		if dispatcher == nil {
			return value.Err(value.ErrBadPathType, current.Kind.String()), p.Slice(i), headSym, true
		}

		rec := &path.Record{Value: current, Tail: p, Index: i + 1, Selector: selector}
		isLast := i == p.Len()-1
		if isLast && setVal != nil {
			rec.IsSet = true
			rec.SetVal = *setVal
		}

		switch dispatcher(rec) {
		case path.OK, path.SET:
			current = rec.Value
		case path.NONE:
			current = value.None
		case path.USE:
			current = rec.Store
		case path.BadSelect:
			return value.Err(value.ErrInvalidPath, ""), p.Slice(i), headSym, true
		case path.BadSet:
			return value.Err(value.ErrBadPathSet, ""), p.Slice(i), headSym, true
		case path.BadRange:
			return value.Err(value.ErrOutOfRange, ""), p.Slice(i), headSym, true
		case path.BadSetType:
			return value.Err(value.ErrBadFieldSet, ""), p.Slice(i), headSym, true
		}
		i = rec.Index
	}

	return current, p.Slice(i), headSym, false
}
