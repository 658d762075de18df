package eval

// Flow is Do_Core's return channel: either the index of the next
// unconsumed token, or one of the two sentinels below (spec.md §4.3
// Outputs).
type Flow int

const (
	// EndFlag means the block was exhausted without producing a value;
	// out has been set to UNSET.
	EndFlag Flow = -1
	// ThrownFlag means a non-local exit propagated; out carries the
	// thrown value.
	ThrownFlag Flow = -2
)

func (f Flow) IsIndex() bool  { return f >= 0 }
func (f Flow) IsEnd() bool    { return f == EndFlag }
func (f Flow) IsThrown() bool { return f == ThrownFlag }
