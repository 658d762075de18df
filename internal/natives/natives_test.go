package natives

import (
	"testing"

	"github.com/glyphlang/glyph/internal/eval"
	"github.com/glyphlang/glyph/internal/signal"
	"github.com/glyphlang/glyph/internal/value"
)

func TestPrefixAdd(t *testing.T) {
	task := eval.NewTask(signal.Config{})
	globals := eval.NewGlobals()
	Install(globals)

	block := value.MakeBlock(
		value.Word(value.WORD, value.Intern("add")),
		value.Integer(1),
		value.Integer(2),
	)
	v, thrown := eval.DoBlock(task, globals, block)
	if thrown {
		t.Fatalf("unexpected throw: %+v", v)
	}
	if v.AsInteger() != 3 {
		t.Fatalf("got %+v", v)
	}
}

func TestInfixPlus(t *testing.T) {
	task := eval.NewTask(signal.Config{})
	globals := eval.NewGlobals()
	Install(globals)

	block := value.MakeBlock(
		value.Integer(1),
		value.Word(value.WORD, value.Intern("+")),
		value.Integer(2),
	)
	v, thrown := eval.DoBlock(task, globals, block)
	if thrown {
		t.Fatalf("unexpected throw: %+v", v)
	}
	if v.AsInteger() != 3 {
		t.Fatalf("got %+v", v)
	}
}

func TestInfixChaining(t *testing.T) {
	task := eval.NewTask(signal.Config{})
	globals := eval.NewGlobals()
	Install(globals)

	// 1 + 2 * 3 evaluates strictly left to right: (1 + 2) * 3 = 9,
	// since the core has no operator-precedence table (spec.md §4.3).
	block := value.MakeBlock(
		value.Integer(1),
		value.Word(value.WORD, value.Intern("+")),
		value.Integer(2),
		value.Word(value.WORD, value.Intern("*")),
		value.Integer(3),
	)
	v, thrown := eval.DoBlock(task, globals, block)
	if thrown {
		t.Fatalf("unexpected throw: %+v", v)
	}
	if v.AsInteger() != 9 {
		t.Fatalf("got %+v", v)
	}
}

func TestReduceNative(t *testing.T) {
	task := eval.NewTask(signal.Config{})
	globals := eval.NewGlobals()
	Install(globals)

	inner := value.MakeBlock(
		value.Integer(1),
		value.Word(value.WORD, value.Intern("+")),
		value.Integer(2),
		value.Integer(5),
	)
	block := value.MakeBlock(
		value.Word(value.WORD, value.Intern("reduce")),
		value.BlockVal(value.BLOCK, inner),
	)
	v, thrown := eval.DoBlock(task, globals, block)
	if thrown {
		t.Fatalf("unexpected throw: %+v", v)
	}
	result := v.AsBlock()
	if result.Len() != 2 || result.At(0).AsInteger() != 3 || result.At(1).AsInteger() != 5 {
		t.Fatalf("got %+v", result)
	}
}

func TestEqualPredicate(t *testing.T) {
	task := eval.NewTask(signal.Config{})
	globals := eval.NewGlobals()
	Install(globals)

	block := value.MakeBlock(
		value.Integer(2),
		value.Word(value.WORD, value.Intern("equal?")),
		value.Integer(2),
	)
	v, thrown := eval.DoBlock(task, globals, block)
	if thrown {
		t.Fatalf("unexpected throw: %+v", v)
	}
	if !v.AsLogic() {
		t.Fatalf("expected true, got %+v", v)
	}
}
