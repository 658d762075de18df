package value

import "math"

// FuncFlag bits live on the function-kind Values (NATIVE, ACTION,
// COMMAND, CLOSURE, FUNCTION, ROUTINE, REBCODE).
type FuncFlag uint8

const (
	// FlagInfix marks a function invoked via one-token lookahead rather
	// than normal prefix call syntax.
	FlagInfix FuncFlag = 1 << iota
	// FlagRedo requests that Do_Core rebuild the call with the value the
	// function returned as the new callee, fulfilling its arguments from
	// the token just after the ones the first call consumed.
	FlagRedo
)

// Value is the uniform, fixed-size cell every block element is made
// of. Grounded on internal/vm/value.go's tagged-union Value
// ({Type ValueType; Data uint64; Obj Object}) from the teacher, widened
// from its five scalar kinds to the full kind set spec.md §3 requires.
//
// Scalars (NONE, LOGIC, INTEGER, DECIMAL) live entirely in Data/Flags
// and never touch Obj, so copying a Value never allocates. WORD-family
// and PATH-family kinds use Sym/Obj for their payload. BLOCK and PAREN
// carry a *Block in Obj. Function kinds carry *Func in Obj. ERROR
// carries *ErrorValue in Obj.
type Value struct {
	Kind  Kind
	Flags FuncFlag
	Data  uint64 // integer bits, decimal bits (math.Float64bits), or logic 0/1
	Sym   Symbol // word name, or path head symbol
	Obj   any    // *Block (BLOCK/PAREN/path tail), *Func, *ErrorValue, string, []byte
}

// Trash is the GC-safe placeholder used to reserve a cell (data-stack
// push_trash_safe, or an uninitialized call-frame slot in debug
// builds) before it is populated. It must never be read as an
// ordinary value nor written into `out`.
var Trash = Value{Kind: END}

// End is the sentinel Value written past the last token in a block
// and used as the data stack's "one past top" cell.
var End = Value{Kind: END}

// Unset is the "no value" marker: reading it via ordinary WORD lookup
// is an error (spec.md §3).
var Unset = Value{Kind: UNSET}

// None is the self-evaluating absence-of-value scalar (distinct from
// Unset, which a variable may never legitimately hold).
var None = Value{Kind: NONE}

func Logic(b bool) Value {
	var d uint64
	if b {
		d = 1
	}
	return Value{Kind: LOGIC, Data: d}
}

func (v Value) AsLogic() bool { return v.Data != 0 }

func Integer(n int64) Value {
	return Value{Kind: INTEGER, Data: uint64(n)}
}

func (v Value) AsInteger() int64 { return int64(v.Data) }

func Decimal(f float64) Value {
	return Value{Kind: DECIMAL, Data: math.Float64bits(f)}
}

func (v Value) AsDecimal() float64 { return math.Float64frombits(v.Data) }

func Str(s string) Value {
	return Value{Kind: STRING, Obj: s}
}

func (v Value) AsString() string {
	s, _ := v.Obj.(string)
	return s
}

func Binary(b []byte) Value {
	return Value{Kind: BINARY, Obj: b}
}

func (v Value) AsBinary() []byte {
	b, _ := v.Obj.([]byte)
	return b
}

// Word constructs a WORD-family value (WORD/GET_WORD/SET_WORD/LIT_WORD)
// for the given interned symbol. kind must be one of the word kinds.
func Word(kind Kind, sym Symbol) Value {
	return Value{Kind: kind, Sym: sym}
}

// IsTruthy implements Glyph's truthiness: everything is true except
// NONE, UNSET, and LOGIC false. Used by ApplyBlock to decide whether a
// refinement slot is set.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case NONE, UNSET:
		return false
	case LOGIC:
		return v.AsLogic()
	default:
		return true
	}
}

// IsUnset reports whether v is the UNSET marker.
func (v Value) IsUnset() bool { return v.Kind == UNSET }

// PathValue constructs a PATH-family value (PATH/GET_PATH/SET_PATH/
// LIT_PATH) over blk, a block whose first element is the path head
// (a WORD or a literal value) and whose remaining elements are
// selectors (spec.md §4.4).
func PathValue(kind Kind, blk *Block) Value {
	return Value{Kind: kind, Obj: blk}
}

func (v Value) AsPath() *Block {
	b, _ := v.Obj.(*Block)
	return b
}

// AsBlock returns the backing *Block for BLOCK/PAREN-kind values.
func (v Value) AsBlock() *Block {
	b, _ := v.Obj.(*Block)
	return b
}

func BlockVal(kind Kind, blk *Block) Value {
	return Value{Kind: kind, Obj: blk}
}

// ObjectVal wraps an opaque object-like payload (e.g. a *bind.Context)
// as an OBJECT-kind value. Declared `any` for the same leaf-package
// reason as Func.Env; internal/path type-asserts it back.
func ObjectVal(obj any) Value {
	return Value{Kind: OBJECT, Obj: obj}
}

// SameWord reports whether a and b are both word-family values naming
// the same interned symbol, ignoring which word kind each carries —
// used by the equal? native to compare words. Refinement matching in
// internal/eval compares Sym fields directly instead, since a spec's
// REFINEMENT cell is not a word-family kind.
func SameWord(a, b Value) bool {
	return a.Kind.IsAnyWord() && b.Kind.IsAnyWord() && a.Sym == b.Sym
}
