package eval

import (
	"github.com/glyphlang/glyph/internal/bind"
	"github.com/glyphlang/glyph/internal/signal"
	"github.com/glyphlang/glyph/internal/value"
)

// DoCore is the evaluator state machine (spec.md §4.3), transcribed
// from the teacher's Eval/evalCore kind-switch generalized from a
// Go-typed AST walk to a value.Kind walk over a flat Block, and from
// c-do.c's Do_Core control flow (main token dispatch, function-call
// lookahead, infix continuation).
//
// block/index name the token being evaluated. next selects single-step
// (true: consume exactly one expression and return) vs. run-to-end
// (false: keep looping until the block is exhausted). lookahead
// enables the one-token infix peek after producing a value; natives
// that fetch their own arguments (e.g. an argument to a quoting
// parameter) pass lookahead=false to suppress it.
func DoCore(t *Task, ctx *bind.Context, out *value.Value, block *value.Block, index int, next, lookahead bool) Flow {
	t.depth++
	defer func() { t.depth-- }()
	if t.depth > t.maxDepth {
		return fail(out, value.ErrStackOverflow, "")
	}

	for {
		if err := t.Pump.Tick(); err != nil {
			return failSignal(out, err)
		}

		tok := block.At(index)
		var thrown bool

		switch tok.Kind {
		case value.END:
			*out = value.Unset
			return EndFlag

		case value.WORD:
			v, ok := ctx.Get(tok.Sym)
			if !ok {
				return fail(out, value.ErrNoValue, value.Name(tok.Sym))
			}
			index, thrown = continueFetchedWord(t, ctx, out, block, index, tok.Sym, v)
			if thrown {
				return ThrownFlag
			}

		case value.SET_WORD:
			var rhs value.Value
			fl := DoCore(t, ctx, &rhs, block, index+1, true, true)
			if fl.IsThrown() {
				*out = rhs
				return ThrownFlag
			}
			if rhs.IsUnset() {
				return fail(out, value.ErrNeedValue, value.Name(tok.Sym))
			}
			ctx.Set(tok.Sym, rhs)
			*out = rhs
			if fl.IsEnd() {
				index = block.Len()
			} else {
				index = int(fl)
			}

		case value.GET_WORD:
			v, _ := ctx.Get(tok.Sym)
			*out = v
			index++

		case value.LIT_WORD:
			*out = value.Word(value.WORD, tok.Sym)
			index++

		case value.LIT_PATH:
			*out = value.PathValue(value.PATH, tok.AsPath().ShallowCopy())
			index++

		case value.PAREN:
			sub, thr := DoBlock(t, ctx, tok.AsBlock())
			if thr {
				*out = sub
				return ThrownFlag
			}
			*out = sub
			index++

		case value.PATH:
			terminal, tail, headSym, thr := evalPath(t, ctx, tok.AsPath(), nil)
			if thr {
				*out = terminal
				return ThrownFlag
			}
			if terminal.Kind.IsAnyFunction() {
				if terminal.IsInfix() {
					return fail(out, value.ErrNoOpArg, value.Name(headSym))
				}
				*out = terminal
				fl := callFunction(t, ctx, out, block, index+1, terminal, headSym, tail)
				if fl.IsThrown() {
					return ThrownFlag
				}
				index = int(fl)
			} else {
				*out = terminal
				index++
			}

		case value.GET_PATH:
			terminal, tail, _, thr := evalPath(t, ctx, tok.AsPath(), nil)
			if thr {
				*out = terminal
				return ThrownFlag
			}
			if terminal.Kind.IsAnyFunction() && tail.Len() > 0 {
				return fail(out, value.ErrTooLong, "")
			}
			*out = terminal
			index++

		case value.SET_PATH:
			var rhs value.Value
			fl := DoCore(t, ctx, &rhs, block, index+1, true, true)
			if fl.IsThrown() {
				*out = rhs
				return ThrownFlag
			}
			if rhs.IsUnset() {
				return fail(out, value.ErrNeedValue, "")
			}
			setResult, _, _, thr := evalPath(t, ctx, tok.AsPath(), &rhs)
			if thr {
				*out = setResult
				return ThrownFlag
			}
			*out = rhs
			if fl.IsEnd() {
				index = block.Len()
			} else {
				index = int(fl)
			}

		case value.FRAME:
			return fail(out, value.ErrBadEvaltype, "")

		default:
			if tok.Kind.IsAnyFunction() {
				if tok.IsInfix() {
					return fail(out, value.ErrNoOpArg, value.Name(tok.Sym))
				}
				*out = tok
				fl := callFunction(t, ctx, out, block, index+1, tok, 0, nil)
				if fl.IsThrown() {
					return ThrownFlag
				}
				index = int(fl)
				break
			}
			// self-evaluating scalar/series kinds.
			*out = tok
			index++
		}

		for {
			if index >= block.Len() {
				return Flow(index)
			}
			if !lookahead {
				break
			}
			nv := block.At(index)

			if fn, label, ok := infixCandidate(ctx, nv); ok {
				fl := callFunction(t, ctx, out, block, index+1, fn, label, nil)
				if fl.IsThrown() {
					return ThrownFlag
				}
				index = int(fl)
				continue
			}

			if nv.Kind == value.WORD && !next {
				v, ok := ctx.Get(nv.Sym)
				if ok {
					idx, thr := continueFetchedWord(t, ctx, out, block, index, nv.Sym, v)
					if thr {
						return ThrownFlag
					}
					index = idx
					continue
				}
			}
			break
		}

		if !next {
			continue
		}
		return Flow(index)
	}
}

// continueFetchedWord implements c-do.c's do_fetched_word: dispatch a
// WORD whose value has already been looked up, without re-fetching it.
// index is the position of the word token itself; the returned index
// points past the word (or past its consumed arguments, if it named an
// infix-free function).
func continueFetchedWord(t *Task, ctx *bind.Context, out *value.Value, block *value.Block, index int, sym value.Symbol, v value.Value) (int, bool) {
	if v.IsUnset() {
		*out = value.Err(value.ErrNoValue, value.Name(sym))
		return 0, true
	}
	if v.Kind.IsAnyFunction() {
		if v.IsInfix() {
			*out = value.Err(value.ErrNoOpArg, value.Name(sym))
			return 0, true
		}
		fl := callFunction(t, ctx, out, block, index+1, v, sym, nil)
		if fl.IsThrown() {
			return 0, true
		}
		return int(fl), false
	}
	*out = v
	return index + 1, false
}

// infixCandidate reports whether nv is (or resolves to) a non-literal
// infix function suitable for the one-token lookahead continuation.
func infixCandidate(ctx *bind.Context, nv value.Value) (value.Value, value.Symbol, bool) {
	if nv.Kind.IsAnyFunction() && nv.IsInfix() {
		return nv, 0, true
	}
	if nv.Kind == value.WORD {
		if v, ok := ctx.Get(nv.Sym); ok && v.Kind.IsAnyFunction() && v.IsInfix() {
			return v, nv.Sym, true
		}
	}
	return value.Value{}, 0, false
}

// failSignal converts a signal.Pump error into a thrown ERROR value.
func failSignal(out *value.Value, err error) Flow {
	switch err.(type) {
	case signal.HaltError:
		return fail(out, value.ErrHalt, "")
	case signal.CeilingError:
		return fail(out, value.ErrStackOverflow, "security ceiling exceeded")
	default:
		return fail(out, value.ErrMisc, err.Error())
	}
}

// DoBlock runs block to completion (every expression it holds) and
// returns the value of the last one, or Unset for an empty block —
// the teacher's Do_Block_Throws, used for PAREN, CLOSURE/FUNCTION
// bodies, and top-level program evaluation.
func DoBlock(t *Task, ctx *bind.Context, block *value.Block) (value.Value, bool) {
	var out value.Value = value.Unset
	fl := DoCore(t, ctx, &out, block, 0, false, true)
	if fl.IsThrown() {
		return out, true
	}
	return out, false
}
