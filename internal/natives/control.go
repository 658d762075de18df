package natives

import (
	"github.com/glyphlang/glyph/internal/eval"
	"github.com/glyphlang/glyph/internal/value"
)

// nativeTry is the trap-catch boundary spec.md §7 describes: "a
// surrounding trap frame catches the throw, inspects its error id, and
// either handles it or rethrows." It marks the task's data-stack depth
// and chunk identity before running body, and on a throw restores the
// data-stack depth (frames free their own chunks while unwinding) and
// returns the thrown ERROR value instead of letting it propagate,
// rather than rethrowing — the simplest trap policy, matching Rebol's
// plain `try`.
func nativeTry(c *eval.Call) (value.Value, bool) {
	body := c.Arg(0).AsBlock()
	if body == nil {
		return c.Arg(0), false
	}
	mark := eval.Mark(c.Task())
	result, thrown := eval.RunBlock(c.Task(), c.Ctx(), body)
	if thrown {
		mark.Restore(c.Task())
		return result, false
	}
	return result, false
}
