// Package natives supplies the built-in NATIVE/ACTION function values a
// fresh Task's global Context is seeded with. Grounded on the
// teacher's internal/evaluator/builtins.go (a name-keyed map of
// built-in callables installed onto the global environment at start
// up), generalized from the teacher's typed-AST Object return values
// to value.Value and from a flat name->callable map to value.Func
// specs the core's argument-fulfillment loop can walk like any other
// function (spec.md §4.2, §4.3).
package natives

import (
	"github.com/glyphlang/glyph/internal/bind"
	"github.com/glyphlang/glyph/internal/eval"
	"github.com/glyphlang/glyph/internal/value"
)

func word(name string) value.Value { return value.Word(value.WORD, value.Intern(name)) }

func spec(names ...string) *value.Block {
	cells := make([]value.Value, len(names))
	for i, n := range names {
		cells[i] = word(n)
	}
	return value.MakeBlock(cells...)
}

func refine(name string, followers ...string) []value.Value {
	cells := []value.Value{value.Word(value.REFINEMENT, value.Intern(name))}
	for _, f := range followers {
		cells = append(cells, word(f))
	}
	return cells
}

// specWithRefinements builds a parameter spec from plain argument
// names followed by one or more refinement groups (spec.md §4.3
// refinement binding).
func specWithRefinements(names []string, groups ...[]value.Value) *value.Block {
	cells := make([]value.Value, 0, len(names))
	for _, n := range names {
		cells = append(cells, word(n))
	}
	for _, g := range groups {
		cells = append(cells, g...)
	}
	return value.MakeBlock(cells...)
}

func native(name string, sp *value.Block, fn eval.Native) value.Value {
	f := &value.Func{Name: value.Intern(name), Spec: sp, Dispatch: fn}
	return value.FuncValue(value.NATIVE, f, 0)
}

func infixNative(name string, sp *value.Block, fn eval.Native) value.Value {
	f := &value.Func{Name: value.Intern(name), Spec: sp, Dispatch: fn}
	return value.FuncValue(value.NATIVE, f, value.FlagInfix)
}

// Install binds the standard native set into globals. Call once per
// Task right after NewTask/NewGlobals.
func Install(globals *bind.Context) {
	globals.Set(value.Intern("add"), native("add", spec("a", "b"), nativeAdd))
	globals.Set(value.Intern("+"), infixNative("+", spec("a", "b"), nativeAdd))
	globals.Set(value.Intern("subtract"), infixNative("subtract", spec("a", "b"), nativeSubtract))
	globals.Set(value.Intern("-"), infixNative("-", spec("a", "b"), nativeSubtract))
	globals.Set(value.Intern("multiply"), infixNative("multiply", spec("a", "b"), nativeMultiply))
	globals.Set(value.Intern("*"), infixNative("*", spec("a", "b"), nativeMultiply))
	globals.Set(value.Intern("equal?"), infixNative("equal?", spec("a", "b"), nativeEqual))
	globals.Set(value.Intern("max"), native("max", spec("a", "b"), nativeMax))
	globals.Set(value.Intern("min"), native("min", spec("a", "b"), nativeMin))
	globals.Set(value.Intern("clip"), native("clip", spec("n", "low", "high"), nativeClip))

	globals.Set(value.Intern("print"), native("print", spec("value"), nativePrint))
	globals.Set(value.Intern("reduce"), native("reduce", spec("block"), nativeReduce))
	globals.Set(value.Intern("reduce-only"), native("reduce-only", spec("block", "words-to-skip"), nativeReduceOnly))
	globals.Set(value.Intern("compose"), native("compose", specWithRefinements([]string{"block"}, refine("deep"), refine("only")), nativeCompose))
	globals.Set(value.Intern("to-bits"), native("to-bits", specWithRefinements([]string{"value"}, refine("size", "n")), nativeToBits))
	globals.Set(value.Intern("try"), native("try", spec("body"), nativeTry))
}
