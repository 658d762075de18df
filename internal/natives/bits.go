package natives

import (
	"github.com/funvibe/funbit/pkg/funbit"

	"github.com/glyphlang/glyph/internal/eval"
	"github.com/glyphlang/glyph/internal/value"
)

// nativeToBits packs its integer argument into a BINARY value using
// Erlang-style bit-syntax construction, honoring an optional /size
// refinement giving the field width in bits (default 32). This is the
// one place in the native set that reaches for funbit rather than
// hand-rolled byte shifting, per SPEC_FULL.md's domain-stack wiring.
func nativeToBits(c *eval.Call) (value.Value, bool) {
	size := 32
	if c.NumArgs() > 1 && c.Arg(1).AsLogic() && c.NumArgs() > 2 {
		size = int(c.Arg(2).AsInteger())
	}

	builder := funbit.NewBuilder()
	funbit.AddInteger(builder, c.Arg(0).AsInteger(), funbit.WithSize(uint(size)))
	packed, err := funbit.Build(builder)
	if err != nil {
		return value.Err(value.ErrMisc, err.Error()), true
	}
	return value.Binary(packed), false
}
