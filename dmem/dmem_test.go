package dmem

import (
	"testing"

	"github.com/silicon-sim/otbnsim/wide"
)

func TestWordRoundTrip(t *testing.T) {
	m := New()
	var w wide.Word
	w, _ = w.SetLimb(3, 0xCAFEBABE)
	if err := m.SetWord(5, w); err != nil {
		t.Fatal(err)
	}
	got, err := m.GetWord(5)
	if err != nil {
		t.Fatal(err)
	}
	limb, _ := got.GetLimb(3)
	if limb != 0xCAFEBABE {
		t.Fatalf("limb 3 = %#x, want 0xcafebabe", limb)
	}
	init, err := m.IsInitialized(5)
	if err != nil || !init {
		t.Fatalf("IsInitialized(5) = %v, %v, want true", init, err)
	}
}

func TestWordIndexOutOfRange(t *testing.T) {
	m := New()
	if _, err := m.GetWord(NumWords); err == nil {
		t.Fatal("expected IndexError for out-of-range word index")
	}
}

// S6 from spec.md §8: reading an uninitialized entry succeeds (reads as
// zero) but reports the read via OnUninitializedRead.
func TestScenarioS6UninitializedRead(t *testing.T) {
	m := New()
	var hits []UninitializedRead
	m.OnUninitializedRead = func(u UninitializedRead) {
		hits = append(hits, u)
	}

	got, err := m.GetWord(9)
	if err != nil {
		t.Fatal(err)
	}
	if got.Limbs() != (wide.Word{}).Limbs() {
		t.Fatalf("uninitialized read should yield zero value")
	}
	if len(hits) != 1 || hits[0].WordIndex != 9 {
		t.Fatalf("expected one uninitialized-read hit for word 9, got %+v", hits)
	}

	// A second read of the same still-uninitialized entry reports again;
	// a write then silences further reports.
	if _, err := m.GetWord(9); err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected a second uninitialized-read hit, got %d", len(hits))
	}
	if err := m.SetWord(9, wide.Word{}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.GetWord(9); err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 {
		t.Fatalf("write should silence further uninitialized-read reports, got %d hits", len(hits))
	}
}

func TestResetClearsValuesAndInitialized(t *testing.T) {
	m := New()
	var w wide.Word
	w, _ = w.SetLimb(0, 1)
	_ = m.SetWord(0, w)
	m.Reset()

	got, _ := m.GetWord(0)
	if got.Limbs() != (wide.Word{}).Limbs() {
		t.Fatalf("Reset should zero values")
	}
	init, _ := m.IsInitialized(0)
	if init {
		t.Fatalf("Reset should clear initialized bit")
	}
}

func TestLoadWordsMarksLoadedInitializedRestUninitialized(t *testing.T) {
	m := New()
	var a, b wide.Word
	a, _ = a.SetLimb(0, 1)
	b, _ = b.SetLimb(0, 2)
	if err := m.LoadWords([]wide.Word{a, b}); err != nil {
		t.Fatal(err)
	}
	if init, _ := m.IsInitialized(1); !init {
		t.Fatalf("entry 1 should be marked initialized after LoadWords")
	}
	if init, _ := m.IsInitialized(2); init {
		t.Fatalf("entry 2 should remain uninitialized after LoadWords([2 words])")
	}
}

func TestLoadWordsOverflow(t *testing.T) {
	m := New()
	words := make([]wide.Word, NumWords+1)
	if err := m.LoadWords(words); err == nil {
		t.Fatal("expected OverflowError for oversized LoadWords")
	}
}

func TestByteAddressedLimbView(t *testing.T) {
	m := New()
	// Word 2, limb 3 -> byte address 2*32 + 3*4 = 76.
	if err := m.SetLimbAtByteAddr(76, 0x11223344); err != nil {
		t.Fatal(err)
	}
	w, err := m.GetWord(2)
	if err != nil {
		t.Fatal(err)
	}
	limb, _ := w.GetLimb(3)
	if limb != 0x11223344 {
		t.Fatalf("limb at word 2 limb 3 = %#x, want 0x11223344", limb)
	}
	got, err := m.GetLimbAtByteAddr(76)
	if err != nil || got != 0x11223344 {
		t.Fatalf("GetLimbAtByteAddr(76) = %#x, %v", got, err)
	}
}

func TestByteAddressedLimbViewMisaligned(t *testing.T) {
	m := New()
	if _, err := m.GetLimbAtByteAddr(77); err == nil {
		t.Fatal("expected ValueError for non-limb-aligned byte address")
	}
}

func TestByteAddressedWordView(t *testing.T) {
	m := New()
	var w wide.Word
	w, _ = w.SetLimb(0, 0xAA)
	if err := m.SetWordAtByteAddr(64, w); err != nil {
		t.Fatal(err)
	}
	got, err := m.GetWordAtByteAddr(64)
	if err != nil {
		t.Fatal(err)
	}
	limb, _ := got.GetLimb(0)
	if limb != 0xAA {
		t.Fatalf("word-aligned view limb 0 = %#x, want 0xaa", limb)
	}
}

func TestByteAddressedWordViewMisaligned(t *testing.T) {
	m := New()
	if err := m.SetWordAtByteAddr(4, wide.Word{}); err == nil {
		t.Fatal("expected ValueError for non-word-aligned byte address")
	}
}
