package natives

import (
	"github.com/glyphlang/glyph/internal/eval"
	"github.com/glyphlang/glyph/internal/value"
)

func bothInteger(c *eval.Call) (int64, int64, bool) {
	a, b := c.Arg(0), c.Arg(1)
	return a.AsInteger(), b.AsInteger(), a.Kind == value.INTEGER && b.Kind == value.INTEGER
}

func nativeAdd(c *eval.Call) (value.Value, bool) {
	if a, b, ok := bothInteger(c); ok {
		return value.Integer(a + b), false
	}
	return value.Decimal(c.Arg(0).AsDecimal() + c.Arg(1).AsDecimal()), false
}

func nativeSubtract(c *eval.Call) (value.Value, bool) {
	if a, b, ok := bothInteger(c); ok {
		return value.Integer(a - b), false
	}
	return value.Decimal(c.Arg(0).AsDecimal() - c.Arg(1).AsDecimal()), false
}

func nativeMultiply(c *eval.Call) (value.Value, bool) {
	if a, b, ok := bothInteger(c); ok {
		return value.Integer(a * b), false
	}
	return value.Decimal(c.Arg(0).AsDecimal() * c.Arg(1).AsDecimal()), false
}

func nativeEqual(c *eval.Call) (value.Value, bool) {
	a, b := c.Arg(0), c.Arg(1)
	if a.Kind != b.Kind {
		return value.Logic(false), false
	}
	switch a.Kind {
	case value.INTEGER, value.LOGIC:
		return value.Logic(a.Data == b.Data), false
	case value.DECIMAL:
		return value.Logic(a.AsDecimal() == b.AsDecimal()), false
	case value.STRING:
		return value.Logic(a.AsString() == b.AsString()), false
	case value.NONE, value.UNSET:
		return value.Logic(true), false
	default:
		return value.Logic(value.SameWord(a, b)), false
	}
}
