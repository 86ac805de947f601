package otbncore

import (
	"testing"

	"github.com/silicon-sim/otbnsim/imem"
	"github.com/silicon-sim/otbnsim/isa"
	"github.com/silicon-sim/otbnsim/wide"
)

func newTestCore(t *testing.T, instrs []imem.Instruction) *Core {
	t.Helper()
	c := New()
	if err := c.Init(instrs, nil, 0, nil, nil); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestStepAdvancesPCAndHalts(t *testing.T) {
	c := newTestCore(t, []imem.Instruction{isa.Nop{}, isa.Nop{}})
	res, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if !res.Continue {
		t.Fatalf("expected Continue after first of two instructions")
	}
	if c.PC() != 1 {
		t.Fatalf("PC = %d, want 1", c.PC())
	}
	res, err = c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if res.Continue {
		t.Fatalf("expected Continue=false at stop_addr")
	}
	if c.PC() != 1 {
		t.Fatalf("PC after natural-end halt = %d, want unchanged at 1 (last valid index), not len(IMEM)", c.PC())
	}
}

// S8 from spec.md §8: step is pure under a null-effect instruction.
func TestScenarioS8StepPurity(t *testing.T) {
	c := newTestCore(t, []imem.Instruction{isa.Nop{}, isa.Nop{}, isa.Nop{}})
	before, err := c.GetGPR(5)
	if err != nil {
		t.Fatal(err)
	}
	beforeFlags := c.Flags()
	beforeDMEM, err := c.GetDMEM(0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Step(); err != nil {
		t.Fatal(err)
	}

	if c.PC() != 1 {
		t.Fatalf("PC = %d, want 1", c.PC())
	}
	after, err := c.GetGPR(5)
	if err != nil || after != before {
		t.Fatalf("gpr5 changed under null-effect instruction: %d -> %d", before, after)
	}
	if c.Flags() != beforeFlags {
		t.Fatalf("flags changed under null-effect instruction")
	}
	afterDMEM, err := c.GetDMEM(0)
	if err != nil || afterDMEM.Limbs() != beforeDMEM.Limbs() {
		t.Fatalf("dmem changed under null-effect instruction")
	}
	if c.Histogram().Count("nop") != 1 {
		t.Fatalf("nop histogram count = %d, want 1", c.Histogram().Count("nop"))
	}
}

// S5 from spec.md §8: hardware-loop PC sequence 5 -> 2 -> ... -> 5 -> 2 ->
// ... -> 5 -> 6, loop stack empty after. With cnt=2 the loop-end address
// (5) is visited three times (cnt+1) before the frame is popped and
// execution proceeds to 6, matching the literal arrow trace in the
// scenario text.
func TestScenarioS5HardwareLoop(t *testing.T) {
	instrs := []imem.Instruction{
		isa.LoopSetup{Cnt: 2, EndAddr: 5, StartAddr: 2}, // pc0
		isa.Nop{}, // pc1
		isa.Nop{}, // pc2 (loop start)
		isa.Nop{}, // pc3
		isa.Nop{}, // pc4
		isa.Nop{}, // pc5 (loop end)
		isa.Nop{}, // pc6
	}
	c := newTestCore(t, instrs)
	stop := uint32(6)
	if err := c.Init(instrs, nil, 0, &stop, nil); err != nil {
		t.Fatal(err)
	}

	var pcTrace []uint32
	for i := 0; i < 20; i++ {
		pcTrace = append(pcTrace, c.PC())
		res, err := c.Step()
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if !res.Continue {
			break
		}
	}

	want := []uint32{0, 1, 2, 3, 4, 5, 2, 3, 4, 5, 2, 3, 4, 5, 6}
	if len(pcTrace) != len(want) {
		t.Fatalf("pc trace = %v, want %v", pcTrace, want)
	}
	for i := range want {
		if pcTrace[i] != want[i] {
			t.Fatalf("pc trace[%d] = %d, want %d (full: %v)", i, pcTrace[i], want[i], pcTrace)
		}
	}
	if c.LoopDepth() != 0 {
		t.Fatalf("loop stack depth = %d, want 0 after loop completes", c.LoopDepth())
	}
}

func TestJumpInstruction(t *testing.T) {
	instrs := []imem.Instruction{
		isa.Jump{Target: 3},
		isa.Nop{},
		isa.Nop{},
		isa.Nop{},
	}
	c := newTestCore(t, instrs)
	if _, err := c.Step(); err != nil {
		t.Fatal(err)
	}
	if c.PC() != 3 {
		t.Fatalf("PC after jump = %d, want 3", c.PC())
	}
}

func TestRequestFinishHaltsOnNextStep(t *testing.T) {
	instrs := []imem.Instruction{isa.Nop{}, isa.Nop{}, isa.Nop{}}
	c := newTestCore(t, instrs)
	c.RequestFinish(true)
	res, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if res.Continue {
		t.Fatalf("expected Continue=false after RequestFinish")
	}
	if !c.LastFinishWasBreakpoint() {
		t.Fatalf("expected LastFinishWasBreakpoint() == true")
	}
}

func TestClearRegsResetsPCAndValues(t *testing.T) {
	c := newTestCore(t, []imem.Instruction{isa.Nop{}})
	_ = c.SetGPR(5, 42)
	c.ClearRegs()
	got, err := c.GetGPR(5)
	if err != nil || got != 0 {
		t.Fatalf("gpr5 after ClearRegs = %d, want 0", got)
	}
	if c.PC() != 0 {
		t.Fatalf("PC after ClearRegs = %d, want 0", c.PC())
	}
}

func TestInitDefaultsStopAddrToLastInstruction(t *testing.T) {
	instrs := []imem.Instruction{isa.Nop{}, isa.Nop{}, isa.Nop{}}
	c := newTestCore(t, instrs)
	if c.StopAddr() != 2 {
		t.Fatalf("StopAddr() = %d, want 2 (len-1)", c.StopAddr())
	}
}

type fakeAsmContext struct {
	funcs, labels map[string]uint32
}

func (f fakeAsmContext) FunctionAddr(name string) (uint32, bool) { a, ok := f.funcs[name]; return a, ok }
func (f fakeAsmContext) LabelAddr(name string) (uint32, bool)    { a, ok := f.labels[name]; return a, ok }

func TestSetBreakpointSymbolicWithoutContext(t *testing.T) {
	c := newTestCore(t, []imem.Instruction{isa.Nop{}})
	if err := c.SetBreakpointSymbolic("main", 1); err == nil {
		t.Fatal("expected ValueError with no assembler context wired")
	}
}

func TestSetBreakpointSymbolicResolvesFunction(t *testing.T) {
	c := newTestCore(t, []imem.Instruction{isa.Nop{}, isa.Nop{}})
	c.SetAssemblerContext(fakeAsmContext{funcs: map[string]uint32{"main": 1}})
	if err := c.SetBreakpointSymbolic("main", 1); err != nil {
		t.Fatal(err)
	}
	all := c.Breakpoints().All()
	if all[1] != 1 {
		t.Fatalf("breakpoint at resolved address not installed: %v", all)
	}
}

func TestDMEMWiredThroughCore(t *testing.T) {
	c := newTestCore(t, []imem.Instruction{isa.Nop{}})
	var w wide.Word
	w, _ = w.SetLimb(0, 7)
	if err := c.SetDMEM(3, w); err != nil {
		t.Fatal(err)
	}
	got, err := c.GetDMEM(3)
	if err != nil {
		t.Fatal(err)
	}
	limb, _ := got.GetLimb(0)
	if limb != 7 {
		t.Fatalf("dmem[3] limb0 = %d, want 7", limb)
	}
}
