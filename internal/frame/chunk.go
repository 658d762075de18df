// Package frame implements the chunked call-frame allocator and the
// call frame itself (spec.md §3, §4.2). Grounded on the teacher's
// internal/vm/chunk.go, whose pool-carves-sub-ranges shape is
// repurposed here from a bytecode instruction buffer into an
// address-stable LIFO arena of value cells backing in-flight function
// calls — a different "chunk" from the teacher's vm.Chunk.
package frame

import "github.com/glyphlang/glyph/internal/value"

// defaultPayload is the number of cells a freshly allocated chunker
// holds when no larger size is forced by a single big request.
const defaultPayload = 512

// chunker is a pool of value cells from which chunks are carved in
// LIFO order. Its backing array is allocated once at the requested
// capacity and never grown — carving a chunk only moves an offset
// forward, so a chunk's cells are address-stable for as long as the
// chunker itself is not reused (spec.md §3 Chunker/Chunk invariants).
type chunker struct {
	buf  []value.Value
	used int
	prev *chunker
}

func newChunker(capacity int) *chunker {
	return &chunker{buf: make([]value.Value, capacity)}
}

func (c *chunker) free() int { return len(c.buf) - c.used }

// Handle identifies one carved chunk so Drop can validate LIFO order
// and the allocator can reclaim the chunker it came from.
type Handle struct {
	owner  *chunker
	offset int
	size   int
}

// Allocator is a singly linked stack of chunkers. At least one chunker
// is always resident; at most one spare empty chunker is kept beyond
// the current top to damp allocation churn (spec.md §3.iii–iv).
type Allocator struct {
	top   *chunker
	spare *chunker
}

// NewAllocator creates an Allocator with one resident chunker.
func NewAllocator() *Allocator {
	return &Allocator{top: newChunker(defaultPayload)}
}

// TopIdentity returns an opaque token identifying the current top
// chunker, for the "chunk balance" property test (spec.md §8): after a
// balanced operation, TopIdentity on exit must equal TopIdentity on
// entry.
func (a *Allocator) TopIdentity() any { return a.top }

// Push carves an n-cell chunk from the top chunker, growing the
// allocator on demand. Cells start as the END sentinel (the debug
// "trash" placeholder); the caller must populate them before the next
// GC-reachable point (spec.md §4.2).
func (a *Allocator) Push(n int) (*value.Block, *Handle) {
	if a.top.free() < n {
		a.growFor(n)
	}
	offset := a.top.used
	cells := a.top.buf[offset : offset+n]
	for i := range cells {
		cells[i] = value.Trash
	}
	a.top.used += n
	return value.NewBlock(cells), &Handle{owner: a.top, offset: offset, size: n}
}

// growFor makes room for an n-cell carve: it reuses the already
// allocated spare chunker if it is large enough, else allocates a new
// one sized to at least max(defaultPayload, 2*n) (spec.md §4.2 Policy).
func (a *Allocator) growFor(n int) {
	if a.spare != nil && len(a.spare.buf) >= n {
		a.spare.prev = a.top
		a.top = a.spare
		a.spare = nil
		return
	}
	size := defaultPayload
	if 2*n > size {
		size = 2 * n
	}
	next := newChunker(size)
	next.prev = a.top
	a.top = next
}

// Drop releases the chunk identified by h, which must be the most
// recently pushed chunk still outstanding (LIFO). optHead, if
// non-nil, is cross-checked against h to catch a caller that lost
// track of which chunk it owns; a mismatch on either is an internal
// invariant violation and panics rather than silently corrupting the
// arena (spec.md §4.2, §9 "Dropping out of order is a programmer
// error that should be debug-asserted").
func (a *Allocator) Drop(h *Handle, optHead *Handle) {
	if h == nil {
		return
	}
	if optHead != nil && optHead != h {
		panic("frame: Drop called with mismatched head handle")
	}
	if h.owner != a.top {
		panic("frame: Drop called out of LIFO order")
	}
	if h.offset+h.size != a.top.used {
		panic("frame: Drop called on a chunk that is not the top allocation")
	}
	a.top.used = h.offset

	// If the dropped chunk emptied this chunker and it is not the
	// bottom one, pop back to its predecessor and keep the emptied
	// chunker as the single spare, unless the current spare is larger
	// (spec.md §4.2).
	if h.offset == 0 && a.top.prev != nil {
		emptied := a.top
		a.top = a.top.prev
		emptied.prev = nil
		emptied.used = 0
		if a.spare == nil || len(a.spare.buf) < len(emptied.buf) {
			a.spare = emptied
		}
	}
}
