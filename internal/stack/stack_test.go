package stack

import (
	"testing"

	"github.com/glyphlang/glyph/internal/value"
)

func TestPushPopDSP(t *testing.T) {
	s := New(0)
	if err := s.Push(value.Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Push(value.Integer(2)); err != nil {
		t.Fatal(err)
	}
	if s.DSP() != 2 {
		t.Fatalf("DSP() = %d, want 2", s.DSP())
	}
	if s.Top().AsInteger() != 2 {
		t.Fatalf("Top() = %+v", s.Top())
	}
	s.Drop()
	if s.DSP() != 1 {
		t.Fatalf("DSP() after Drop = %d", s.DSP())
	}
}

func TestPushOverflow(t *testing.T) {
	s := New(1)
	if err := s.Push(value.Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Push(value.Integer(2)); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestDropToRestoresDepth(t *testing.T) {
	s := New(0)
	s.Push(value.Integer(1))
	mark := s.DSP()
	s.Push(value.Integer(2))
	s.Push(value.Integer(3))
	s.DropTo(mark)
	if s.DSP() != mark {
		t.Fatalf("DSP() = %d, want %d", s.DSP(), mark)
	}
}

func TestPopToArrayGathersAboveMark(t *testing.T) {
	s := New(0)
	s.Push(value.Integer(1))
	mark := s.DSP()
	s.Push(value.Integer(2))
	s.Push(value.Integer(3))
	blk := s.PopToArray(mark)
	if blk.Len() != 2 || blk.At(0).AsInteger() != 2 || blk.At(1).AsInteger() != 3 {
		t.Fatalf("unexpected block: %+v", blk.Cells())
	}
	if s.DSP() != mark {
		t.Fatalf("DSP() not restored: %d", s.DSP())
	}
}

func TestAtOutOfRangeIsEnd(t *testing.T) {
	s := New(0)
	if s.At(0).Kind != value.END {
		t.Fatalf("expected END on empty stack, got %v", s.At(0).Kind)
	}
}
