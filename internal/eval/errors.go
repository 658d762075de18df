package eval

import "github.com/glyphlang/glyph/internal/value"

// fail writes an ERROR-kind value into *out and reports it as thrown,
// matching spec.md §7: every error the core raises is a thrown value,
// never a host panic.
func fail(out *value.Value, id value.ErrorID, detail string, args ...value.Value) Flow {
	*out = value.Err(id, detail, args...)
	return ThrownFlag
}

// typeCheck reports whether arg's kind satisfies param's declared
// typeset. A parameter with no typeset (Obj == nil) accepts anything;
// this is the uncommon, explicitly-typed case, so most parameters pay
// no cost for it (spec.md §4.3 step 4, §7 arg-type).
func typeCheck(param, arg value.Value) bool {
	set, ok := param.Obj.([]value.Kind)
	if !ok || set == nil {
		return true
	}
	for _, k := range set {
		if k == arg.Kind {
			return true
		}
	}
	return false
}
