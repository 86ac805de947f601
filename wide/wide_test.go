package wide

import (
	"errors"
	"testing"

	"github.com/silicon-sim/otbnsim/otbnerr"
)

func TestLimbRoundTrip(t *testing.T) {
	var w Word
	for i := 0; i < Limbs; i++ {
		v := uint64(i+1) * 0x11111111
		var err error
		w, err = w.SetLimb(i, v)
		if err != nil {
			t.Fatalf("SetLimb(%d): %v", i, err)
		}
	}
	for i := 0; i < Limbs; i++ {
		got, err := w.GetLimb(i)
		if err != nil {
			t.Fatalf("GetLimb(%d): %v", i, err)
		}
		want := uint32(uint64(i+1) * 0x11111111)
		if got != want {
			t.Errorf("limb %d = %#x, want %#x", i, got, want)
		}
	}
}

func TestSetLimbOverflow(t *testing.T) {
	var w Word
	_, err := w.SetLimb(0, 1<<32)
	var oerr *otbnerr.Error
	if !errors.As(err, &oerr) || oerr.Kind != otbnerr.OverflowError {
		t.Fatalf("expected OverflowError, got %v", err)
	}
}

func TestLimbIndexOutOfRange(t *testing.T) {
	var w Word
	_, err := w.GetLimb(8)
	var oerr *otbnerr.Error
	if !errors.As(err, &oerr) || oerr.Kind != otbnerr.IndexError {
		t.Fatalf("expected IndexError, got %v", err)
	}
}

// S1 from spec.md §8: limb/half-word round-trip.
func TestScenarioS1(t *testing.T) {
	var w Word
	w, err := w.SetLimb(3, 0xDEADBEEF)
	if err != nil {
		t.Fatal(err)
	}
	qw, err := w.GetQW(1)
	if err != nil {
		t.Fatal(err)
	}
	// Quarter-word 1 is limbs 2..3, so limb 3 lands in its upper 32 bits.
	if qw != 0xDEADBEEF00000000 {
		t.Fatalf("GetQW(1) = %#x, want 0xDEADBEEF00000000", qw)
	}

	w, err = w.SetHalfWord(1, [2]uint64{0x9988776655443322, 0x1122334455667788})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := w.GetLimb(4); v != 0x55443322 {
		t.Errorf("limb 4 = %#x, want 0x55443322", v)
	}
	if v, _ := w.GetLimb(7); v != 0x11223344 {
		t.Errorf("limb 7 = %#x, want 0x11223344", v)
	}
	if v, _ := w.GetLimb(3); v != 0xDEADBEEF {
		t.Errorf("limb 3 changed: %#x, want unchanged 0xDEADBEEF", v)
	}
}

func TestSetHalfWordZeroesOtherBitsOnly(t *testing.T) {
	var w Word
	w, _ = w.SetLimb(0, 0x11111111)
	w, _ = w.SetLimb(1, 0x22222222)
	w, _ = w.SetLimb(2, 0x33333333)
	w, _ = w.SetLimb(3, 0x44444444)
	w, err := w.SetHalfWord(0, [2]uint64{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if v, _ := w.GetLimb(i); v != 0 {
			t.Errorf("low half limb %d = %#x, want 0", i, v)
		}
	}
	if v, _ := w.GetLimb(4); v != 0 {
		t.Errorf("high half untouched but zero-initialized limb 4 = %#x", v)
	}
}

func TestShlShrSaturate(t *testing.T) {
	var a [32]byte
	a[0] = 0xFF
	if got := Shl(a, 256); got != ([32]byte{}) {
		t.Errorf("Shl by 256 should be zero, got %v", got)
	}
	if got := Shr(a, 300); got != ([32]byte{}) {
		t.Errorf("Shr by 300 should be zero, got %v", got)
	}
}

func TestShlByOneMatchesManualCarry(t *testing.T) {
	var a [32]byte
	a[0] = 0x80
	got := Shl(a, 1)
	if got[0] != 0 || got[1] != 1 {
		t.Errorf("Shl(1) = %v, want carry into byte 1", got)
	}
}

func TestAddCCarryOut(t *testing.T) {
	var a, b [32]byte
	for i := range a {
		a[i] = 0xFF
	}
	b[0] = 0x01
	sum, carry := AddC(a, b)
	if !carry {
		t.Errorf("expected carry out")
	}
	for _, v := range sum {
		if v != 0 {
			t.Errorf("expected all-zero sum, got %v", sum)
			break
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	var w Word
	w, _ = w.SetLimb(0, 0xAABBCCDD)
	b := w.Bytes()
	if b[0] != 0xDD || b[1] != 0xCC || b[2] != 0xBB || b[3] != 0xAA {
		t.Errorf("Bytes() little-endian mismatch: %v", b[:4])
	}
	w2 := FromBytes(b)
	if w2 != w {
		t.Errorf("FromBytes(Bytes(w)) != w")
	}
}
