package natives

import (
	"fmt"

	"github.com/glyphlang/glyph/internal/eval"
	"github.com/glyphlang/glyph/internal/value"
)

func nativePrint(c *eval.Call) (value.Value, bool) {
	fmt.Println(formatValue(c.Arg(0)))
	return value.Unset, false
}

func formatValue(v value.Value) string {
	switch v.Kind {
	case value.STRING:
		return v.AsString()
	case value.INTEGER:
		return fmt.Sprintf("%d", v.AsInteger())
	case value.DECIMAL:
		return fmt.Sprintf("%g", v.AsDecimal())
	case value.LOGIC:
		return fmt.Sprintf("%t", v.AsLogic())
	case value.NONE:
		return "none"
	case value.UNSET:
		return ""
	case value.WORD, value.GET_WORD, value.SET_WORD, value.LIT_WORD:
		return value.Name(v.Sym)
	default:
		return v.Kind.String()
	}
}

func nativeReduce(c *eval.Call) (value.Value, bool) {
	blk := c.Arg(0).AsBlock()
	if blk == nil {
		return c.Arg(0), false
	}
	result, thrown := eval.Reduce(c.Task(), c.Ctx(), blk)
	if thrown {
		return result.At(0), true
	}
	return value.BlockVal(value.BLOCK, result), false
}

func nativeReduceOnly(c *eval.Call) (value.Value, bool) {
	blk := c.Arg(0).AsBlock()
	if blk == nil {
		return c.Arg(0), false
	}
	skipBlk := c.Arg(1).AsBlock()
	skip := make([]value.Symbol, 0, skipBlk.Len())
	for _, tok := range skipBlk.Cells() {
		if tok.Kind.IsAnyWord() {
			skip = append(skip, tok.Sym)
		}
	}
	result, thrown := eval.ReduceOnly(c.Task(), c.Ctx(), blk, skip)
	if thrown {
		return result.At(0), true
	}
	return value.BlockVal(value.BLOCK, result), false
}

func nativeCompose(c *eval.Call) (value.Value, bool) {
	blk := c.Arg(0).AsBlock()
	if blk == nil {
		return c.Arg(0), false
	}
	deep := c.Arg(1).AsLogic()
	only := c.Arg(2).AsLogic()
	result, thrown := eval.Compose(c.Task(), c.Ctx(), blk, deep, only)
	if thrown {
		return result.At(0), true
	}
	return value.BlockVal(value.BLOCK, result), false
}
