package natives

import (
	"testing"

	"github.com/glyphlang/glyph/internal/eval"
	"github.com/glyphlang/glyph/internal/signal"
	"github.com/glyphlang/glyph/internal/value"
)

func TestTryCatchesThrownError(t *testing.T) {
	task := eval.NewTask(signal.Config{})
	globals := eval.NewGlobals()
	Install(globals)

	body := value.MakeBlock(value.Word(value.WORD, value.Intern("nope")))
	block := value.MakeBlock(
		value.Word(value.WORD, value.Intern("try")),
		value.BlockVal(value.BLOCK, body),
	)

	v, thrown := eval.DoBlock(task, globals, block)
	if thrown {
		t.Fatalf("try should catch the throw rather than propagate it, got thrown=%+v", v)
	}
	if e := v.AsError(); e == nil || e.ID != value.ErrNoValue {
		t.Fatalf("expected the caught no-value error as an ordinary value, got %+v", v)
	}
}

func TestTryPassesThroughNonThrowingResult(t *testing.T) {
	task := eval.NewTask(signal.Config{})
	globals := eval.NewGlobals()
	Install(globals)

	body := value.MakeBlock(value.Integer(5))
	block := value.MakeBlock(
		value.Word(value.WORD, value.Intern("try")),
		value.BlockVal(value.BLOCK, body),
	)

	v, thrown := eval.DoBlock(task, globals, block)
	if thrown {
		t.Fatalf("unexpected throw: %+v", v)
	}
	if v.AsInteger() != 5 {
		t.Fatalf("got %+v", v)
	}
}

func TestTryLeavesStackBalancedAfterCatch(t *testing.T) {
	task := eval.NewTask(signal.Config{})
	globals := eval.NewGlobals()
	Install(globals)

	dspBefore := task.Stack.DSP()
	body := value.MakeBlock(value.Word(value.WORD, value.Intern("boom")))
	block := value.MakeBlock(
		value.Word(value.WORD, value.Intern("try")),
		value.BlockVal(value.BLOCK, body),
	)
	if _, thrown := eval.DoBlock(task, globals, block); thrown {
		t.Fatal("try should have caught the throw")
	}
	if task.Stack.DSP() != dspBefore {
		t.Fatalf("expected stack restored to %d, got %d", dspBefore, task.Stack.DSP())
	}
}
