package otbntrace

import (
	"strings"
	"testing"
)

func TestMaskGatesOutput(t *testing.T) {
	var buf strings.Builder
	tr := New(&buf, Fetch|Stack)

	tr.Tracef(Fetch, "fetch pc=%d", 5)
	tr.Tracef(Dispatch, "dispatch should not appear")
	tr.Tracef(Stack, "stack depth=%d", 2)

	out := buf.String()
	if !strings.Contains(out, "fetch pc=5") {
		t.Errorf("expected fetch line in output: %q", out)
	}
	if strings.Contains(out, "dispatch should not appear") {
		t.Errorf("dispatch line should have been gated out: %q", out)
	}
	if !strings.Contains(out, "stack depth=2") {
		t.Errorf("expected stack line in output: %q", out)
	}
}

func TestNilTracerDiscardsSilently(t *testing.T) {
	var tr *Tracer
	tr.Tracef(Fetch, "should not panic")
	if tr.Enabled(Fetch) {
		t.Errorf("nil tracer should report disabled")
	}
}

func TestSetMaskChangesEnabledChannels(t *testing.T) {
	var buf strings.Builder
	tr := New(&buf, Fetch)
	if !tr.Enabled(Fetch) || tr.Enabled(Dispatch) {
		t.Fatalf("initial mask wrong")
	}
	tr.SetMask(Dispatch)
	if tr.Enabled(Fetch) || !tr.Enabled(Dispatch) {
		t.Fatalf("SetMask did not take effect")
	}
}
