package otbnconfig

import (
	"errors"
	"strings"
	"testing"

	"github.com/silicon-sim/otbnsim/otbnerr"
)

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	in := strings.NewReader("\n# a comment\n   \nbreakpoint 0x10\n")
	got, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d directives, want 1: %v", len(got), got)
	}
	if got[0].Kind != "breakpoint" || got[0].Addr != 0x10 || got[0].Passes != 1 {
		t.Fatalf("unexpected directive: %+v", got[0])
	}
}

func TestParseBreakpointWithPasses(t *testing.T) {
	in := strings.NewReader("breakpoint 0x20 3\n")
	got, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Addr != 0x20 || got[0].Passes != 3 {
		t.Fatalf("unexpected directive: %+v", got[0])
	}
}

func TestParseTraceChannels(t *testing.T) {
	in := strings.NewReader("trace fetch dispatch\n")
	got, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(got[0].Channels) != 2 || got[0].Channels[0] != "fetch" || got[0].Channels[1] != "dispatch" {
		t.Fatalf("unexpected channels: %+v", got[0])
	}
}

func TestParseLoglevel(t *testing.T) {
	in := strings.NewReader("loglevel WARN\n")
	got, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Kind != "loglevel" || got[0].Level != "warn" {
		t.Fatalf("unexpected directive: %+v", got[0])
	}
}

func TestParseUnknownDirective(t *testing.T) {
	in := strings.NewReader("bogus 1 2\n")
	_, err := Parse(in)
	if err == nil {
		t.Fatal("expected error for unknown directive")
	}
	var oe *otbnerr.Error
	if !errors.As(err, &oe) || oe.Kind != otbnerr.ValueError {
		t.Fatalf("expected ValueError, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected line number in error: %v", err)
	}
}

func TestParseMalformedBreakpointMissingAddr(t *testing.T) {
	in := strings.NewReader("breakpoint\n")
	_, err := Parse(in)
	if err == nil {
		t.Fatal("expected error for missing address")
	}
}

func TestParseBadAddressHex(t *testing.T) {
	in := strings.NewReader("breakpoint zzz\n")
	_, err := Parse(in)
	if err == nil {
		t.Fatal("expected error for invalid hex address")
	}
}

func TestParseLineNumberReportedOnSecondLine(t *testing.T) {
	in := strings.NewReader("breakpoint 0x10\nbogus\n")
	_, err := Parse(in)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 in error, got %v", err)
	}
}
