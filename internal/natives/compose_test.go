package natives

import (
	"testing"

	"github.com/glyphlang/glyph/internal/eval"
	"github.com/glyphlang/glyph/internal/signal"
	"github.com/glyphlang/glyph/internal/value"
)

func TestReduceOnlyNativeSkipsListedWord(t *testing.T) {
	task := eval.NewTask(signal.Config{})
	globals := eval.NewGlobals()
	Install(globals)
	globals.Set(value.Intern("x"), value.Integer(99))

	skip := value.MakeBlock(value.Word(value.WORD, value.Intern("x")))
	body := value.MakeBlock(value.Word(value.WORD, value.Intern("x")), value.Integer(1))
	block := value.MakeBlock(
		value.Word(value.WORD, value.Intern("reduce-only")),
		value.BlockVal(value.BLOCK, body),
		value.BlockVal(value.BLOCK, skip),
	)

	v, thrown := eval.DoBlock(task, globals, block)
	if thrown {
		t.Fatalf("unexpected throw: %+v", v)
	}
	result := v.AsBlock()
	if result.At(0).Kind != value.WORD || result.At(0).Sym != value.Intern("x") {
		t.Fatalf("expected x copied through untouched, got %+v", result.At(0))
	}
}

// TestComposeOnlyRoundTrip exercises `compose/only [(reverse [a b])]`
// producing `[[b a]]` rather than splicing the reversed block's
// elements into the outer block.
func TestComposeOnlyRoundTrip(t *testing.T) {
	task := eval.NewTask(signal.Config{})
	globals := eval.NewGlobals()
	Install(globals)

	reversed := value.MakeBlock(value.Word(value.WORD, value.Intern("b")), value.Word(value.WORD, value.Intern("a")))
	paren := value.BlockVal(value.PAREN, value.MakeBlock(value.BlockVal(value.BLOCK, reversed)))
	composeBlock := value.MakeBlock(paren)

	composeFn, ok := globals.Get(value.Intern("compose"))
	if !ok {
		t.Fatal("compose not installed")
	}
	out, thrown := eval.ApplyFunc(task, globals, composeFn, value.Intern("compose"),
		[]value.Value{value.BlockVal(value.BLOCK, composeBlock)})
	// ApplyFunc sets refinements to false/NONE, so this call exercises
	// compose's default (splicing) path; /only is exercised via
	// ApplyBlock below to also cover the reduceArgs-literal contract.
	if thrown {
		t.Fatalf("unexpected throw: %+v", out)
	}
	if out.AsBlock().Len() != 2 {
		t.Fatalf("expected default compose to splice, got %+v", out.AsBlock().Cells())
	}

	onlyArgs := value.MakeBlock(value.BlockVal(value.BLOCK, composeBlock), value.Logic(false), value.Logic(true))
	out, thrown = eval.ApplyBlock(task, globals, composeFn, value.Intern("compose"), onlyArgs, 0, true)
	if thrown {
		t.Fatalf("unexpected throw: %+v", out)
	}
	result := out.AsBlock()
	if result.Len() != 1 || result.At(0).Kind != value.BLOCK {
		t.Fatalf("expected compose/only to produce a single nested block, got %+v", result.Cells())
	}
	inner := result.At(0).AsBlock()
	if inner.Len() != 2 || inner.At(0).Sym != value.Intern("b") || inner.At(1).Sym != value.Intern("a") {
		t.Fatalf("expected [[b a]], got %+v", inner.Cells())
	}
}
