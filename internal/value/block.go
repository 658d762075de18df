package value

// Block is an address-stable, length-indexed ordered sequence of
// cells, implicitly terminated by an END cell one past its length
// (spec.md §3). The evaluator never mutates a block it is evaluating;
// PAREN/BLOCK values simply reference another Block's storage.
type Block struct {
	cells []Value
}

// NewBlock wraps an existing cell slice as a Block without copying.
func NewBlock(cells []Value) *Block {
	return &Block{cells: cells}
}

// MakeBlock allocates a new Block with the given cells copied in.
func MakeBlock(cells ...Value) *Block {
	b := &Block{cells: make([]Value, len(cells))}
	copy(b.cells, cells)
	return b
}

// Len returns the number of real cells in the block (not counting the
// implicit terminating END).
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.cells)
}

// At returns the cell at index, or the END sentinel if index is past
// the last real cell. It never panics on out-of-range index.
func (b *Block) At(index int) Value {
	if b == nil || index < 0 || index >= len(b.cells) {
		return End
	}
	return b.cells[index]
}

// Cells returns the block's backing slice directly. Callers must treat
// it as read-only; the evaluator borrows it, it never owns it.
func (b *Block) Cells() []Value {
	if b == nil {
		return nil
	}
	return b.cells
}

// Slice returns a new Block over the sub-range [from:], sharing
// backing storage (no copy) — used to materialize a path's remaining
// tail or a refinement list.
func (b *Block) Slice(from int) *Block {
	if b == nil || from >= len(b.cells) {
		return &Block{}
	}
	if from < 0 {
		from = 0
	}
	return &Block{cells: b.cells[from:]}
}

// Append grows the block's backing slice by one cell holding v.
func (b *Block) Append(v Value) {
	b.cells = append(b.cells, v)
}

// InsertAt inserts v at index, shifting later cells right by one. Used
// by Stack.PopInto to splice stack-gathered results into an existing
// block at a caller-tracked position.
func (b *Block) InsertAt(index int, v Value) {
	if index >= len(b.cells) {
		b.cells = append(b.cells, v)
		return
	}
	if index < 0 {
		index = 0
	}
	b.cells = append(b.cells, End)
	copy(b.cells[index+1:], b.cells[index:])
	b.cells[index] = v
}

// ShallowCopy duplicates the cell slice (new backing array, same cell
// contents) — used when Do_Core evaluates a LIT_PATH to a PATH, so the
// result does not alias the storage of the source token (spec.md §9
// open question 3).
func (b *Block) ShallowCopy() *Block {
	if b == nil {
		return &Block{}
	}
	cp := make([]Value, len(b.cells))
	copy(cp, b.cells)
	return &Block{cells: cp}
}
