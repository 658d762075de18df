// Package eval implements Do_Core, the evaluator state machine, and
// everything built on top of it: block reduction/composition, path
// evaluation, and the Apply_Block/Apply_Func front ends (spec.md §2,
// §4). Grounded on the teacher's internal/evaluator/evaluator.go
// (Eval/evalCore kind-switch dispatch) and apply.go (ApplyFunction's
// argument-binding loop), generalized from a Go-type switch over
// ast.Node to a value.Kind switch over Value, and from slice-of-Object
// arguments to frame-cell arguments, per spec.md §4.3.
package eval

import (
	"github.com/google/uuid"

	"github.com/glyphlang/glyph/internal/bind"
	"github.com/glyphlang/glyph/internal/frame"
	"github.com/glyphlang/glyph/internal/signal"
	"github.com/glyphlang/glyph/internal/stack"
)

// Sink receives trace/debug events from a Task without the core
// depending on how they are rendered (spec.md §1: trace/debug output
// formatting is an external collaborator). internal/trace and
// internal/debugsvc both implement it.
type Sink interface {
	// OnCall fires just before a function call's arguments begin
	// fulfillment.
	OnCall(taskID uuid.UUID, label string, depth int)
	// OnReturn fires after Dispatch_Call returns for a call.
	OnReturn(taskID uuid.UUID, label string, depth int)
}

// nopSink discards every event; used when a Task has no Sink attached.
type nopSink struct{}

func (nopSink) OnCall(uuid.UUID, string, int)   {}
func (nopSink) OnReturn(uuid.UUID, string, int) {}

// Task bundles the per-task state spec.md §5/§9 says must be grouped
// into an explicit record and threaded into every evaluator operation
// rather than kept in process-wide globals: the data stack, the
// chunked frame allocator, the signal pump, the current call-frame
// top, and a trace sink. The process-wide symbol table and a task's
// global Context are the only things not here (the former lives in
// internal/value, effectively append-only; the latter is passed to
// DoCore/DoBlock/RunBlock explicitly since a task may evaluate against different
// contexts at different points, e.g. inside a CLOSURE body).
type Task struct {
	ID uuid.UUID

	Stack *stack.Stack
	Alloc *frame.Allocator
	Pump  *signal.Pump
	Sink  Sink

	CallTop *frame.Frame // innermost in-flight call frame, nil at top level

	depth     int // Go-recursion depth guard (spec.md §4.3.i CPU-stack headroom)
	maxDepth  int
}

// DefaultMaxDepth bounds Do_Core's own recursion (not the host CPU
// stack directly — Go does not expose remaining stack headroom the
// way the original's C runtime does — but the same protective role:
// spec.md §4.3.i "checks CPU-stack headroom and raises stack-overflow
// if low").
const DefaultMaxDepth = 100000

// NewTask creates a Task with fresh per-task state. cfg configures the
// signal pump and data-stack ceiling (spec.md §6).
func NewTask(cfg signal.Config) *Task {
	return &Task{
		ID:       uuid.New(),
		Stack:    stack.New(cfg.StackLimit),
		Alloc:    frame.NewAllocator(),
		Pump:     signal.New(cfg),
		Sink:     nopSink{},
		maxDepth: DefaultMaxDepth,
	}
}

// NewGlobals creates a task's top-level Context — analogous to the
// teacher's Evaluator.GlobalEnv, but owned by the task rather than by
// a process-wide Evaluator, since each Task is independent (per-task
// state is segregated from process-wide state).
func NewGlobals() *bind.Context { return bind.New() }
