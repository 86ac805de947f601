/*
 * otbnsim - instruction memory: an ordered, bounded sequence of opaque
 * instruction records, plus the Instruction capability interface the core
 * dispatches through.
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

// Package imem holds the instruction stream the core fetches from, and
// defines the Instruction interface that instruction bodies (assembled
// elsewhere, out of scope per spec.md §1) implement to be dispatched by the
// step engine.
package imem

import (
	"github.com/silicon-sim/otbnsim/flags"
	"github.com/silicon-sim/otbnsim/otbnerr"
	"github.com/silicon-sim/otbnsim/regsel"
	"github.com/silicon-sim/otbnsim/wide"
)

// Depth is the maximum number of instruction records IMEM can hold.
const Depth = 1024

// Core is the mutation surface an Instruction body needs from the owning
// core. It is declared here, in the same package as Instruction, so that
// the root otbncore package can satisfy it structurally without imem ever
// importing otbncore (which itself imports imem for Memory) — this is the
// interface-at-the-consumer shape spec.md §9's Design Notes call for.
type Core interface {
	GetGPR(i int) (uint32, error)
	SetGPR(i int, v uint32) error
	GetWide(sel regsel.Sel) (wide.Word, error)
	SetWide(sel regsel.Sel, v wide.Word) error
	GetRegLimb(sel regsel.Sel, i int) (uint32, error)
	SetRegLimb(sel regsel.Sel, i int, v uint64) error
	GetRegHalfLimb(sel regsel.Sel, i int, upper bool) (uint16, error)
	SetRegHalfLimb(sel regsel.Sel, i int, upper bool, v uint32) error
	GetACC() (wide.Word, error)
	SetACC(v wide.Word) error

	Flags() flags.Groups
	SetFlags(g flags.Groups)

	GetDMEM(addr int) (wide.Word, error)
	SetDMEM(addr int, v wide.Word) error

	GetCSR(addr uint32) (uint32, error)
	SetCSR(addr uint32, v uint32) error
	GetWSR(index int) (wide.Word, error)
	SetWSR(index int, v wide.Word) error

	PushCall(addr uint32) error
	PopCall() (uint32, error)
	PushLoop(cnt, endAddr, startAddr uint32) error
	PopLoop() error
}

// Instruction is the capability interface the step engine dispatches
// through; instruction bodies are assembled elsewhere, out of scope per
// spec.md §1.
type Instruction interface {
	// AsmString returns the raw encoding and the disassembled text; used
	// only for stats/trace, never interpreted by the core.
	AsmString() (encoding uint32, asmText string)
	// Cycles returns the reported cycle count for this instruction,
	// unmodified by the core.
	Cycles() int
	// Execute mutates core state and returns trace text plus an optional
	// jump target. A nil jumpAddr means "fall through to PC+1" unless the
	// loop end-of-body fold overrides it.
	Execute(core Core) (traceText string, jumpAddr *uint32)
}

// Memory is the ordered, bounded instruction sequence. It is never mutated
// by the core after Load.
type Memory struct {
	instrs []Instruction
}

// Load replaces the instruction sequence. len(instrs) must be <= Depth.
func (m *Memory) Load(instrs []Instruction) error {
	if len(instrs) > Depth {
		return otbnerr.New(otbnerr.OverflowError, "instruction memory overflow: %d instructions exceeds depth %d", len(instrs), Depth)
	}
	m.instrs = instrs
	return nil
}

// Len returns the number of loaded instructions.
func (m *Memory) Len() int {
	return len(m.instrs)
}

// Fetch returns the instruction at pc. pc must be in [0, Len()).
func (m *Memory) Fetch(pc uint32) (Instruction, error) {
	if int(pc) < 0 || int(pc) >= len(m.instrs) {
		return nil, otbnerr.New(otbnerr.IndexError, "pc %d out of range [0,%d)", pc, len(m.instrs))
	}
	return m.instrs[pc], nil
}
