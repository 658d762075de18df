package value

import "testing"

func TestInternIsStable(t *testing.T) {
	a := Intern("foo")
	b := Intern("foo")
	if a != b {
		t.Fatalf("Intern not stable: %v != %v", a, b)
	}
	if Name(a) != "foo" {
		t.Fatalf("Name(a) = %q", Name(a))
	}
}

func TestInternDistinctNames(t *testing.T) {
	a := Intern("bar-1")
	b := Intern("bar-2")
	if a == b {
		t.Fatalf("distinct names interned to the same symbol")
	}
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{None, false},
		{Unset, false},
		{Logic(false), false},
		{Logic(true), true},
		{Integer(0), true},
		{Str(""), true},
	}
	for _, c := range cases {
		if got := c.v.IsTruthy(); got != c.want {
			t.Fatalf("IsTruthy(%+v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestSameWord(t *testing.T) {
	a := Word(WORD, Intern("x"))
	b := Word(SET_WORD, Intern("x"))
	c := Word(WORD, Intern("y"))
	if !SameWord(a, b) {
		t.Fatalf("expected same-symbol words to match regardless of kind")
	}
	if SameWord(a, c) {
		t.Fatalf("expected different symbols not to match")
	}
}

func TestBlockAtPastEndIsEnd(t *testing.T) {
	b := MakeBlock(Integer(1), Integer(2))
	if b.At(5).Kind != END {
		t.Fatalf("expected END past block length, got %v", b.At(5).Kind)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestBlockSliceSharesStorage(t *testing.T) {
	b := MakeBlock(Integer(1), Integer(2), Integer(3))
	tail := b.Slice(1)
	if tail.Len() != 2 || tail.At(0).AsInteger() != 2 {
		t.Fatalf("unexpected tail: %+v", tail)
	}
}

func TestBlockShallowCopyIndependent(t *testing.T) {
	b := MakeBlock(Integer(1))
	cp := b.ShallowCopy()
	cp.Append(Integer(2))
	if b.Len() != 1 {
		t.Fatalf("original block mutated by copy append: len=%d", b.Len())
	}
	if cp.Len() != 2 {
		t.Fatalf("copy did not grow: len=%d", cp.Len())
	}
}

func TestBlockInsertAt(t *testing.T) {
	b := MakeBlock(Integer(1), Integer(3))
	b.InsertAt(1, Integer(2))
	if b.Len() != 3 || b.At(0).AsInteger() != 1 || b.At(1).AsInteger() != 2 || b.At(2).AsInteger() != 3 {
		t.Fatalf("unexpected block after insert: %+v", b.Cells())
	}
}

func TestErrString(t *testing.T) {
	v := Err(ErrNoValue, "nope")
	if !v.IsError() {
		t.Fatalf("expected ERROR kind")
	}
	e := v.AsError()
	if e.Error() != "no-value: nope" {
		t.Fatalf("got %q", e.Error())
	}
}

func TestErrWithoutDetail(t *testing.T) {
	v := Err(ErrHalt, "")
	if v.AsError().Error() != "halt" {
		t.Fatalf("got %q", v.AsError().Error())
	}
}
