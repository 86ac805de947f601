/*
 * otbnsim - the per-instruction step engine.
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

package otbncore

import (
	"github.com/silicon-sim/otbnsim/otbnerr"
	"github.com/silicon-sim/otbnsim/otbntrace"
	"github.com/silicon-sim/otbnsim/stats"
)

// StepResult reports the outcome of one Step call.
type StepResult struct {
	Continue  bool
	TraceText string
	Cycles    int
}

// Step executes exactly one instruction and reports whether execution
// should continue, per the eight-step contract of spec.md §4.I. Halt is
// evaluated before dispatch but only applied to Continue after the rest of
// the step has run, so a halted PC's instruction still executes once — the
// original machine's "step to the halt instruction" behavior.
func (c *Core) Step() (StepResult, error) {
	halt := c.pc == c.stopAddr || c.finishFlag

	if hit, ok := c.bp.Check(c.pc, c.loops.Depth(), c.calls.Depth()); ok {
		if hit.ForceBreak {
			c.Log.Info("force-break hit", "addr", hit.Addr)
		} else {
			c.Log.Info("breakpoint hit", "addr", hit.Addr, "passes", hit.Passes)
		}
	}

	instr, err := c.imemory.Fetch(c.pc)
	if err != nil {
		return StepResult{}, err
	}

	_, asmText := instr.AsmString()
	c.hist.Bump(stats.ExtractOpcode(asmText))

	cycles := instr.Cycles()
	traceText, jumpAddr := instr.Execute(c)
	c.Trace.Tracef(otbntrace.Dispatch, "pc=%d %s", c.pc, asmText)

	if !c.loops.Empty() {
		endAddr, err := c.loops.TopEndAddr()
		if err != nil {
			return StepResult{}, err
		}
		if c.pc == endAddr {
			decremented, err := c.loops.DecTopCnt()
			if err != nil {
				return StepResult{}, err
			}
			if decremented {
				startAddr, err := c.loops.TopStartAddr()
				if err != nil {
					return StepResult{}, err
				}
				jumpAddr = &startAddr
			} else if _, err := c.loops.Pop(); err != nil {
				return StepResult{}, err
			}
		}
	}

	cont := true
	if jumpAddr != nil {
		if int(*jumpAddr) < 0 || int(*jumpAddr) >= c.imemory.Len() {
			return StepResult{}, otbnerr.New(otbnerr.RuntimeError, "jump target %d out of range [0,%d)", *jumpAddr, c.imemory.Len())
		}
		c.pc = *jumpAddr
	} else {
		next := c.pc + 1
		if int(next) >= c.imemory.Len() {
			cont = false
		} else {
			c.pc = next
		}
	}

	if halt {
		cont = false
	}

	return StepResult{Continue: cont, TraceText: traceText, Cycles: cycles}, nil
}

// Run steps until Step reports Continue == false or an error occurs,
// returning the number of instructions executed.
func (c *Core) Run() (int, error) {
	n := 0
	for {
		res, err := c.Step()
		if err != nil {
			return n, err
		}
		n++
		if !res.Continue {
			return n, nil
		}
	}
}
