/*
 * otbnsim - minimal instruction set used to exercise the step engine.
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

// Package isa is not an assembler: it is a handful of imem.Instruction
// implementations (NOP, a GPR add, a hardware-loop setup, an unconditional
// jump) just complete enough to drive otbncore.Core.Step end-to-end in
// tests. Real instruction bodies live outside this module, per spec.md §1.
package isa

import "github.com/silicon-sim/otbnsim/imem"

// Nop does nothing and falls through to PC+1.
type Nop struct{}

func (Nop) AsmString() (uint32, string)            { return 0, "nop" }
func (Nop) Cycles() int                            { return 1 }
func (Nop) Execute(imem.Core) (string, *uint32)    { return "", nil }

// AddGPR computes gpr[Dst] = gpr[Src1] + gpr[Src2] and falls through.
type AddGPR struct {
	Dst, Src1, Src2 int
}

func (a AddGPR) AsmString() (uint32, string) { return 0, "add" }
func (a AddGPR) Cycles() int                 { return 1 }

func (a AddGPR) Execute(core imem.Core) (string, *uint32) {
	x, err := core.GetGPR(a.Src1)
	if err != nil {
		return "", nil
	}
	y, err := core.GetGPR(a.Src2)
	if err != nil {
		return "", nil
	}
	_ = core.SetGPR(a.Dst, x+y)
	return "add", nil
}

// LoopSetup pushes a hardware-loop frame and falls through.
type LoopSetup struct {
	Cnt, EndAddr, StartAddr uint32
}

func (l LoopSetup) AsmString() (uint32, string) { return 0, "loop" }
func (l LoopSetup) Cycles() int                 { return 1 }

func (l LoopSetup) Execute(core imem.Core) (string, *uint32) {
	_ = core.PushLoop(l.Cnt, l.EndAddr, l.StartAddr)
	return "loop", nil
}

// Jump unconditionally transfers control to Target.
type Jump struct {
	Target uint32
}

func (j Jump) AsmString() (uint32, string) { return 0, "jal" }
func (j Jump) Cycles() int                 { return 1 }

func (j Jump) Execute(imem.Core) (string, *uint32) {
	target := j.Target
	return "jal", &target
}

var _ imem.Instruction = Nop{}
var _ imem.Instruction = AddGPR{}
var _ imem.Instruction = LoopSetup{}
var _ imem.Instruction = Jump{}
