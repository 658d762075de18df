package natives

import (
	"golang.org/x/exp/constraints"

	"github.com/glyphlang/glyph/internal/eval"
	"github.com/glyphlang/glyph/internal/value"
)

// clamp bounds n within [lo, hi]. Generic over both of Glyph's
// numeric scalar kinds so `clip` doesn't need a duplicate comparison
// per kind.
func clamp[T constraints.Ordered](n, lo, hi T) T {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func nativeMax(c *eval.Call) (value.Value, bool) {
	a, b := c.Arg(0), c.Arg(1)
	if a.Kind == value.INTEGER && b.Kind == value.INTEGER {
		if a.AsInteger() > b.AsInteger() {
			return a, false
		}
		return b, false
	}
	if a.AsDecimal() > b.AsDecimal() {
		return a, false
	}
	return b, false
}

func nativeMin(c *eval.Call) (value.Value, bool) {
	a, b := c.Arg(0), c.Arg(1)
	if a.Kind == value.INTEGER && b.Kind == value.INTEGER {
		if a.AsInteger() < b.AsInteger() {
			return a, false
		}
		return b, false
	}
	if a.AsDecimal() < b.AsDecimal() {
		return a, false
	}
	return b, false
}

// nativeClip clamps its first argument between the second (low) and
// third (high) bounds.
func nativeClip(c *eval.Call) (value.Value, bool) {
	n, lo, hi := c.Arg(0), c.Arg(1), c.Arg(2)
	if n.Kind == value.INTEGER && lo.Kind == value.INTEGER && hi.Kind == value.INTEGER {
		return value.Integer(clamp(n.AsInteger(), lo.AsInteger(), hi.AsInteger())), false
	}
	return value.Decimal(clamp(n.AsDecimal(), lo.AsDecimal(), hi.AsDecimal())), false
}
