// Package signal implements the evaluator's tick counter and signal
// pump (spec.md §5, §6): the only place in the core where control
// leaves the pure token walk to check on GC pressure, halt requests,
// and the cumulative-evaluation security ceiling.
package signal

import "sync/atomic"

// Mask bits of eval_signals (spec.md §6).
type Mask uint32

const (
	Recycle Mask = 1 << iota
	Escape
	EventPort
)

// Config is the §6 configuration surface. internal/config loads this
// from YAML; cmd/glyph and tests may also build one directly.
type Config struct {
	EvalLimit  int64 // cumulative ticks before the security ceiling fires, 0 = unlimited
	EvalDose   int64 // ticks between signal-pump checks
	TraceLevel int   // 0 = off, >0 = max reported depth
	TraceFlags uint8 // bit 0: per-function tracing enabled
	StackLimit int   // data-stack cell ceiling
	BootPhase  int   // guards escape-signal handling until >= MezzanineBoot
}

const (
	// TraceFlagFunction enables per-function call tracing.
	TraceFlagFunction uint8 = 1 << 0

	// MezzanineBoot is the boot_phase value past which halt escape
	// signals are honored (spec.md §5).
	MezzanineBoot = 2

	// DefaultEvalDose is the tick budget used when EvalDose is unset.
	// Tick reads the signal mask on every tick, so a pending bit is
	// serviced on the next tick whatever remains of the dose.
	DefaultEvalDose = 1024
)

// HaltError is returned by Pump.Tick when an escape signal is pending
// and boot has passed the mezzanine threshold. internal/eval turns it
// into a thrown ERROR-kind Value of id ErrHalt.
type HaltError struct{}

func (HaltError) Error() string { return "halt" }

// CeilingError is returned when cumulative ticks exceed EvalLimit.
type CeilingError struct{}

func (CeilingError) Error() string { return "security ceiling exceeded" }

// Pump is per-task state: exactly one evaluator reads mask and ticks
// it down, but OS callbacks or allocators under pressure may set bits
// from other goroutines, hence the atomic (spec.md §6 Signal interface).
type Pump struct {
	cfg        Config
	mask       atomic.Uint32
	remaining  int64 // ticks left in the current dose
	cumulative int64
	servicing  bool // masks re-entrant signal delivery while true

	// OnRecycle is invoked when a Recycle bit is serviced; it stands in
	// for the GC's mark/sweep entry point, which is out of scope for
	// this package (spec.md §1).
	OnRecycle func()
}

// New creates a Pump for cfg, defaulting EvalDose if unset.
func New(cfg Config) *Pump {
	if cfg.EvalDose <= 0 {
		cfg.EvalDose = DefaultEvalDose
	}
	return &Pump{cfg: cfg, remaining: cfg.EvalDose}
}

// Raise sets bits in the signal mask. Safe to call from any goroutine.
func (p *Pump) Raise(bits Mask) {
	p.mask.Or(uint32(bits))
}

// Config returns the Pump's configuration.
func (p *Pump) Config() Config { return p.cfg }

// Tick is called once per Do_Core iteration (spec.md §4.3 step ii). It
// decrements the per-dose counter and, on reaching zero, services any
// pending signals. It returns a non-nil error only when the evaluator
// must raise a thrown error (halt or ceiling); the caller is
// responsible for converting that into an ERROR-kind Value.
func (p *Pump) Tick() error {
	p.cumulative++
	if p.cfg.EvalLimit > 0 && p.cumulative > p.cfg.EvalLimit {
		return CeilingError{}
	}

	p.remaining--
	bits := p.mask.Load()
	if p.remaining > 0 && bits == 0 {
		return nil
	}
	p.remaining = p.cfg.EvalDose

	if bits == 0 || p.servicing {
		return nil
	}
	return p.service(Mask(bits))
}

// service runs pending signal handlers, masking re-entry (spec.md §5:
// "Signals are masked while being serviced to prevent re-entry loops").
func (p *Pump) service(bits Mask) error {
	p.servicing = true
	defer func() { p.servicing = false }()

	if bits&Recycle != 0 {
		p.mask.And(^uint32(Recycle))
		if p.OnRecycle != nil {
			p.OnRecycle()
		}
	}
	if bits&Escape != 0 {
		p.mask.And(^uint32(Escape))
		if p.cfg.BootPhase >= MezzanineBoot {
			return HaltError{}
		}
	}
	// EventPort is serviced by the host I/O layer, out of scope here;
	// clearing it is still this package's job so it does not re-fire.
	if bits&EventPort != 0 {
		p.mask.And(^uint32(EventPort))
	}
	return nil
}
