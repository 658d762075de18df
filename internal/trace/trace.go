// Package trace implements the evaluator's call/return tracer: an
// eval.Sink that renders function-entry/exit events as leveled text
// lines, wired to a Task through internal/signal's trace_level knob. Grounded on jcorbin/gothird's internal/logio
// Logger (mutex-guarded io.WriteCloser wrapper with a Printf-style
// leveled write), which the teacher itself has no analogue for — the
// whole package is an enrichment from elsewhere in the pack, per
// SPEC_FULL.md's ambient-stack section.
package trace

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Logger is a leveled, mutex-guarded writer, following gothird's
// logio.Logger shape but narrowed to this package's one concern: the
// evaluator's call/return trace plus ad hoc diagnostic lines.
type Logger struct {
	mu     sync.Mutex
	output io.Writer
	buf    bytes.Buffer

	maxDepth int // trace_level: 0 disables, >0 caps reported call depth
}

// New creates a Logger writing to w. maxDepth is spec.md §6's
// trace_level: 0 reports no calls, and calls deeper than a positive
// maxDepth are not reported.
func New(w io.Writer, maxDepth int) *Logger {
	return &Logger{output: w, maxDepth: maxDepth}
}

// OnCall implements eval.Sink.
func (l *Logger) OnCall(taskID uuid.UUID, label string, depth int) {
	l.event(">>", taskID, label, depth)
}

// OnReturn implements eval.Sink.
func (l *Logger) OnReturn(taskID uuid.UUID, label string, depth int) {
	l.event("<<", taskID, label, depth)
}

func (l *Logger) event(arrow string, taskID uuid.UUID, label string, depth int) {
	if l.maxDepth <= 0 || depth > l.maxDepth {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf.Reset()
	fmt.Fprintf(&l.buf, "%s task=%s depth=%s label=%s\n",
		arrow, shortID(taskID), humanize.Comma(int64(depth)), label)
	l.buf.WriteTo(l.output)
}

func shortID(id uuid.UUID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// Printf writes an ad hoc, non-call-related trace line (e.g. a signal
// pump event) at the given level.
func (l *Logger) Printf(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf.Reset()
	l.buf.WriteString(level)
	l.buf.WriteString(": ")
	fmt.Fprintf(&l.buf, format, args...)
	if b := l.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		l.buf.WriteByte('\n')
	}
	l.buf.WriteTo(l.output)
}
