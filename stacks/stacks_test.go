package stacks

import (
	"errors"
	"testing"

	"github.com/silicon-sim/otbnsim/otbnerr"
)

func TestCallStackLIFO(t *testing.T) {
	var s CallStack
	values := []uint32{10, 20, 30}
	for _, v := range values {
		if err := s.Push(v); err != nil {
			t.Fatalf("Push(%d): %v", v, err)
		}
	}
	for i := len(values) - 1; i >= 0; i-- {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop(): %v", err)
		}
		if got != values[i] {
			t.Errorf("Pop() = %d, want %d", got, values[i])
		}
	}
	if _, err := s.Pop(); !errors.Is(err, otbnerr.ErrCallStackUnderrun) {
		t.Errorf("expected CallStackUnderrun, got %v", err)
	}
	// CallStackUnderrun must also satisfy errors.Is against the generic
	// OverflowError sentinel, per spec.md §4.G.
	_, err := s.Pop()
	if !errors.Is(err, otbnerr.ErrOverflow) {
		t.Errorf("CallStackUnderrun should also match OverflowError sentinel, got %v", err)
	}
}

func TestCallStackOverflow(t *testing.T) {
	var s CallStack
	for i := 0; i < Depth; i++ {
		if err := s.Push(uint32(i)); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	err := s.Push(99)
	var oerr *otbnerr.Error
	if !errors.As(err, &oerr) || oerr.Kind != otbnerr.OverflowError {
		t.Fatalf("expected OverflowError on 17th push, got %v", err)
	}
}

// Testable property 6 from spec.md §8: hardware loop fold mechanics at the
// stack level.
func TestLoopStackFoldMechanics(t *testing.T) {
	var s LoopStack
	if err := s.Push(3, 5, 2); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		ok, err := s.DecTopCnt()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("iteration %d: expected DecTopCnt to succeed", i)
		}
	}
	ok, err := s.DecTopCnt()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected DecTopCnt to report exhausted after 3 decrements from cnt=3")
	}
	if _, err := s.Pop(); err != nil {
		t.Fatalf("Pop after exhaustion: %v", err)
	}
	if !s.Empty() {
		t.Fatal("loop stack should be empty after popping exhausted frame")
	}
}

func TestLoopStackEmptyInspection(t *testing.T) {
	var s LoopStack
	if _, err := s.TopEndAddr(); !errors.Is(err, otbnerr.ErrRuntime) {
		t.Errorf("expected RuntimeError inspecting empty loop stack, got %v", err)
	}
}
