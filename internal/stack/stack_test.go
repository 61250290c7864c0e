package stack

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPushRespectsCapacity(t *testing.T) {
	s := New(3)
	for i := int32(1); i <= 3; i++ {
		if err := s.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if err := s.Push(4); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Push at capacity: got %v, want %v", err, ErrOverflow)
	}
	if diff := cmp.Diff([]int32{1, 2, 3}, s.All()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !s.Full() || s.Len() != 3 {
		t.Errorf("Len/Full = %d/%v", s.Len(), s.Full())
	}
}

func TestPeek(t *testing.T) {
	s := New(23)
	if _, err := s.Peek(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("Peek on empty: got %v", err)
	}
	s.Push(10)
	s.Push(20)
	if v, _ := s.Peek(); v != 20 {
		t.Errorf("Peek = %d, want 20", v)
	}
	if s.Len() != 2 {
		t.Errorf("Peek removed a value: Len = %d", s.Len())
	}
}

func TestPop2(t *testing.T) {
	s := New(23)
	s.Push(7)
	if _, _, err := s.Pop2(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("Pop2 with one value: got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("failed Pop2 removed values: Len = %d", s.Len())
	}
	s.Push(9)
	s.Push(11)
	a, b, err := s.Pop2()
	if err != nil {
		t.Fatal(err)
	}
	if a != 9 || b != 11 {
		t.Errorf("Pop2 = %d, %d; want 9, 11", a, b)
	}
	if diff := cmp.Diff([]int32{7}, s.All()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAllIsACopy(t *testing.T) {
	s := New(2)
	s.Push(1)
	all := s.All()
	all[0] = 42
	if v, _ := s.Peek(); v != 1 {
		t.Errorf("All aliases the stack: Peek = %d", v)
	}
}

func TestZeroValue(t *testing.T) {
	var s Bounded
	if err := s.Push(1); !errors.Is(err, ErrOverflow) {
		t.Errorf("zero value Push: got %v", err)
	}
	if err := New(-1).Push(1); !errors.Is(err, ErrOverflow) {
		t.Errorf("New(-1).Push: got %v", err)
	}
}
