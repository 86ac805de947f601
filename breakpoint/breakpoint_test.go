package breakpoint

import "testing"

func TestAddressBreakpointPassCount(t *testing.T) {
	c := New(16)
	if err := c.Set(5, 3); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if _, hit := c.Check(5, 0, 0); hit {
			t.Fatalf("pass %d: unexpected hit", i+1)
		}
	}
	hit, ok := c.Check(5, 0, 0)
	if !ok {
		t.Fatal("expected hit on third pass")
	}
	if hit.Addr != 5 || hit.Passes != 3 {
		t.Errorf("hit = %+v, want addr=5 passes=3", hit)
	}
	// Counter resets to 1 after a hit, so the cycle repeats.
	for i := 0; i < 2; i++ {
		if _, hit := c.Check(5, 0, 0); hit {
			t.Fatalf("post-reset pass %d: unexpected hit", i+1)
		}
	}
	if _, hit := c.Check(5, 0, 0); !hit {
		t.Fatal("expected second hit after three more passes")
	}
}

func TestAddressOutOfRange(t *testing.T) {
	c := New(16)
	if err := c.Set(16, 1); err == nil {
		t.Fatal("expected IndexError for address == imemLen")
	}
}

func TestForceBreakNoConditions(t *testing.T) {
	c := New(16)
	c.ArmForceBreak(false, 0, false, 0)
	hit, ok := c.Check(100, 5, 5)
	if !ok || !hit.ForceBreak {
		t.Fatal("expected unconditional force-break hit")
	}
	if c.ForceBreakArmed() {
		t.Fatal("force-break should disarm after firing")
	}
}

func TestForceBreakLoopStackDepth(t *testing.T) {
	c := New(16)
	c.ArmForceBreak(false, 0, true, 2)
	if _, ok := c.Check(1, 3, 0); ok {
		t.Fatal("should not fire: loop depth mismatch")
	}
	if _, ok := c.Check(1, 2, 0); !ok {
		t.Fatal("should fire: loop depth matches")
	}
}

func TestForceBreakCallStackDepth(t *testing.T) {
	c := New(16)
	c.ArmForceBreak(true, 4, false, 0)
	if _, ok := c.Check(1, 0, 1); ok {
		t.Fatal("should not fire: call depth mismatch")
	}
	if _, ok := c.Check(1, 0, 4); !ok {
		t.Fatal("should fire: call depth matches")
	}
}

func TestToggleAddsThenRemoves(t *testing.T) {
	c := New(16)
	if err := c.Toggle(3, 1); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.All()[3]; !ok {
		t.Fatal("expected breakpoint installed after first toggle")
	}
	if err := c.Toggle(3, 1); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.All()[3]; ok {
		t.Fatal("expected breakpoint removed after second toggle")
	}
}
