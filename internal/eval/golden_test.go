package eval

import (
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/glyphlang/glyph/internal/value"
)

// golden runs each named scenario and renders its result the same way
// testdata/golden.txtar expects, catching any regression in Do_Core's
// basic control flow in one table rather than one test function per
// case (spec.md §8 testable properties).
func golden(t *testing.T, name string) value.Value {
	t.Helper()
	switch name {
	case "set-word-then-word":
		return runBlock(t,
			value.Word(value.SET_WORD, value.Intern("x")),
			value.Integer(7),
			w("x"),
		)
	case "infix-chain":
		task, ctx := newTestTask()
		ctx.Set(value.Intern("+"), infixAdd())
		ctx.Set(value.Intern("*"), infixMul())
		block := value.MakeBlock(
			value.Integer(1), w("+"), value.Integer(2), w("*"), value.Integer(3),
		)
		v, thrown := DoBlock(task, ctx, block)
		if thrown {
			t.Fatalf("unexpected throw: %+v", v)
		}
		return v
	case "paren-inline":
		inner := value.MakeBlock(value.Integer(1), value.Integer(2))
		return runBlock(t, value.BlockVal(value.PAREN, inner))
	case "unbound-word":
		task, ctx := newTestTask()
		block := value.MakeBlock(w("nope"))
		v, _ := DoBlock(task, ctx, block)
		return v
	}
	t.Fatalf("unknown scenario %q", name)
	return value.Value{}
}

func render(v value.Value) string {
	if v.IsError() {
		return "** " + v.AsError().ID.String()
	}
	switch v.Kind {
	case value.INTEGER:
		return itoa(v.AsInteger())
	default:
		return v.Kind.String()
	}
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func TestGoldenScenarios(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/golden.txtar")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range archive.Files {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			got := render(golden(t, f.Name))
			want := trimTrailingNewline(string(f.Data))
			if got != want {
				t.Fatalf("scenario %q: got %q, want %q", f.Name, got, want)
			}
		})
	}
}

func trimTrailingNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func infixAdd() value.Value {
	f := &value.Func{Spec: value.MakeBlock(w("a"), w("b")), Dispatch: Native(func(c *Call) (value.Value, bool) {
		return value.Integer(c.Arg(0).AsInteger() + c.Arg(1).AsInteger()), false
	})}
	return value.FuncValue(value.NATIVE, f, value.FlagInfix)
}

func infixMul() value.Value {
	f := &value.Func{Spec: value.MakeBlock(w("a"), w("b")), Dispatch: Native(func(c *Call) (value.Value, bool) {
		return value.Integer(c.Arg(0).AsInteger() * c.Arg(1).AsInteger()), false
	})}
	return value.FuncValue(value.NATIVE, f, value.FlagInfix)
}
