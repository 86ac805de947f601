/*
 * otbnsim - the core: owns all architectural state and exposes the mutator
 * surface instruction bodies dispatch through.
 *
 * Copyright 2026, otbnsim authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package otbncore composes the register file, flag groups, CSR/WSR space,
// data and instruction memories, loop/call stacks and breakpoint controller
// into one Core, and drives them with the per-instruction step engine of
// spec.md §4.I. The core embeds no concurrency of its own: a step is atomic,
// and making it safe for concurrent callers is explicitly out of scope.
package otbncore

import (
	"log/slog"

	"github.com/silicon-sim/otbnsim/breakpoint"
	"github.com/silicon-sim/otbnsim/csr"
	"github.com/silicon-sim/otbnsim/dmem"
	"github.com/silicon-sim/otbnsim/flags"
	"github.com/silicon-sim/otbnsim/imem"
	"github.com/silicon-sim/otbnsim/otbnerr"
	"github.com/silicon-sim/otbnsim/otbnlog"
	"github.com/silicon-sim/otbnsim/otbntrace"
	"github.com/silicon-sim/otbnsim/regfile"
	"github.com/silicon-sim/otbnsim/regsel"
	"github.com/silicon-sim/otbnsim/stacks"
	"github.com/silicon-sim/otbnsim/stats"
	"github.com/silicon-sim/otbnsim/wide"
)

// Constants exposed to callers, mirrored from the leaf packages per spec.md §6.
const (
	XLen           = wide.XLen
	Limbs          = wide.Limbs
	NumRegs        = regfile.NumRegs
	NumGPRs        = regfile.NumGPRs
	GPRWidth       = regfile.GPRWidth
	DMEMDepth      = dmem.NumWords
	IMEMDepth      = imem.Depth
	LoopStackSize  = stacks.Depth
	CallStackSize  = stacks.Depth
	CSRFlag        = csr.Flag
	CSRModBase     = csr.ModBase
	CSRRng         = csr.RNG
	WSRMod         = csr.WsrMod
	WSRRnd         = csr.WsrRnd
	ITypeImmWidth  = 12
	DefaultDumpFilename = "dmem_dump.hex"
	ABIVersion     = 1
)

// AssemblerContext is the optional, read-only collaborator the core
// consults to resolve symbolic breakpoints, per spec.md §6.
type AssemblerContext interface {
	FunctionAddr(name string) (uint32, bool)
	LabelAddr(name string) (uint32, bool)
}

// Core owns every piece of architectural state and the step engine that
// drives it.
type Core struct {
	regs    *regfile.RegisterFile
	flags   flags.Groups
	csr     *csr.Space
	dmemory *dmem.Memory
	imemory imem.Memory
	loops   stacks.LoopStack
	calls   stacks.CallStack
	bp      *breakpoint.Controller
	hist    *stats.Histogram

	pc         uint32
	stopAddr   uint32
	finishFlag bool
	lastFinishViaBreakpoint bool

	asmCtx AssemblerContext

	Log   *slog.Logger
	Trace *otbntrace.Tracer
}

// New returns a Core with empty IMEM/DMEM; call Init before stepping.
func New() *Core {
	c := &Core{
		hist: stats.NewHistogram(),
		Log:  otbnlog.Default(),
	}
	c.calls = stacks.CallStack{}
	c.regs = regfile.New(&c.calls)
	c.dmemory = dmem.New()
	c.dmemory.OnUninitializedRead = func(u dmem.UninitializedRead) {
		c.Log.Warn("uninitialized dmem read", "word", u.WordIndex)
	}
	c.bp = breakpoint.New(0)
	c.csr = csr.New(c.regs, &c.flags)
	return c
}

// SetAssemblerContext wires the optional symbol-resolution collaborator.
func (c *Core) SetAssemblerContext(ctx AssemblerContext) {
	c.asmCtx = ctx
}

// PC returns the current program counter.
func (c *Core) PC() uint32 { return c.pc }

// StopAddr returns the configured terminating PC.
func (c *Core) StopAddr() uint32 { return c.stopAddr }

// Histogram returns the opcode execution histogram.
func (c *Core) Histogram() *stats.Histogram { return c.hist }

// Breakpoints returns the breakpoint controller, for direct address-table
// and force-break manipulation (spec.md §4.H).
func (c *Core) Breakpoints() *breakpoint.Controller { return c.bp }

// LoopDepth returns the current loop stack depth.
func (c *Core) LoopDepth() int { return c.loops.Depth() }

// CallDepth returns the current call stack depth.
func (c *Core) CallDepth() int { return c.calls.Depth() }

// --- imem.Core surface: the mutation contract instruction bodies dispatch through ---

func (c *Core) GetGPR(i int) (uint32, error) { return c.regs.GetGPR(i) }
func (c *Core) SetGPR(i int, v uint32) error { return c.regs.SetGPR(i, v) }

func (c *Core) GetWide(sel regsel.Sel) (wide.Word, error) { return c.regs.GetWide(sel) }
func (c *Core) SetWide(sel regsel.Sel, v wide.Word) error { return c.regs.SetWide(sel, v) }

func (c *Core) GetRegLimb(sel regsel.Sel, i int) (uint32, error) { return c.regs.GetRegLimb(sel, i) }
func (c *Core) SetRegLimb(sel regsel.Sel, i int, v uint64) error {
	return c.regs.SetRegLimb(sel, i, v)
}

func (c *Core) GetRegHalfLimb(sel regsel.Sel, i int, upper bool) (uint16, error) {
	w, err := c.regs.GetWide(sel)
	if err != nil {
		return 0, err
	}
	return w.GetHalfLimb(i, upper)
}

func (c *Core) SetRegHalfLimb(sel regsel.Sel, i int, upper bool, v uint32) error {
	return c.regs.SetRegHalfLimb(sel, i, upper, v)
}

func (c *Core) GetACC() (wide.Word, error) { return c.regs.GetACC(), nil }
func (c *Core) SetACC(v wide.Word) error   { c.regs.SetACC(v); return nil }

func (c *Core) Flags() flags.Groups        { return c.flags }
func (c *Core) SetFlags(g flags.Groups)    { c.flags = g }

func (c *Core) GetDMEM(addr int) (wide.Word, error) { return c.dmemory.GetWord(addr) }
func (c *Core) SetDMEM(addr int, v wide.Word) error { return c.dmemory.SetWord(addr, v) }

func (c *Core) GetCSR(addr uint32) (uint32, error) { return c.csr.GetCSR(addr) }
func (c *Core) SetCSR(addr uint32, v uint32) error { return c.csr.SetCSR(addr, v) }
func (c *Core) GetWSR(index int) (wide.Word, error) { return c.csr.GetWSR(index) }
func (c *Core) SetWSR(index int, v wide.Word) error { return c.csr.SetWSR(index, v) }

func (c *Core) PushCall(addr uint32) error { return c.calls.Push(addr) }
func (c *Core) PopCall() (uint32, error)   { return c.calls.Pop() }

func (c *Core) PushLoop(cnt, endAddr, startAddr uint32) error {
	return c.loops.Push(cnt, endAddr, startAddr)
}
func (c *Core) PopLoop() error {
	_, err := c.loops.Pop()
	return err
}

var _ imem.Core = (*Core)(nil)

// SetBreakpointSymbolic resolves name against the optional assembler
// context (functions first, then labels) and installs an address
// breakpoint there. Fails with ValueError if no context is wired or the
// name is not found in it, per spec.md §4.H.
func (c *Core) SetBreakpointSymbolic(name string, passes int) error {
	if c.asmCtx == nil {
		return otbnerr.New(otbnerr.ValueError, "no assembler context wired: cannot resolve symbolic breakpoint %q", name)
	}
	if addr, ok := c.asmCtx.FunctionAddr(name); ok {
		return c.bp.Set(addr, passes)
	}
	if addr, ok := c.asmCtx.LabelAddr(name); ok {
		return c.bp.Set(addr, passes)
	}
	return otbnerr.New(otbnerr.ValueError, "unknown function or label %q", name)
}
