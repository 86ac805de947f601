/*
 * otbnsim - core lifecycle: init, reset, clear_regs.
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
	"github.com/silicon-sim/otbnsim/flags"
	"github.com/silicon-sim/otbnsim/imem"
	"github.com/silicon-sim/otbnsim/stacks"
	"github.com/silicon-sim/otbnsim/wide"
)

// InitialBreakpoint seeds one address breakpoint at Init time.
type InitialBreakpoint struct {
	Addr   uint32
	Passes int
}

// Init loads instrs and dmemWords, sets pc := startAddr, and defaults
// stopAddr to len(instrs)-1 when stopAddr is nil. It empties the stacks,
// disarms force-break, and installs any initial breakpoints, per spec.md
// §4.K.
func (c *Core) Init(instrs []imem.Instruction, dmemWords []wide.Word, startAddr uint32, stopAddr *uint32, initialBreakpoints []InitialBreakpoint) error {
	if err := c.imemory.Load(instrs); err != nil {
		return err
	}
	c.bp.SetIMEMLen(c.imemory.Len())

	if err := c.dmemory.LoadWords(dmemWords); err != nil {
		return err
	}

	c.ClearRegs()
	c.regs.ResetValidity()

	c.flags = flags.Groups{}
	c.loops = stacks.LoopStack{}
	c.calls = stacks.CallStack{}
	c.bp.DisarmForceBreak()
	c.hist.Reset()

	c.pc = startAddr
	if stopAddr != nil {
		c.stopAddr = *stopAddr
	} else if c.imemory.Len() > 0 {
		c.stopAddr = uint32(c.imemory.Len() - 1)
	} else {
		c.stopAddr = 0
	}
	c.finishFlag = false
	c.lastFinishViaBreakpoint = false

	for _, bp := range initialBreakpoints {
		if err := c.bp.Set(bp.Addr, bp.Passes); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears flags, stacks and half-limb validity, rebuilds DMEM exactly
// as Init would, and replaces IMEM. If clearRegs is set, it also calls
// ClearRegs. per spec.md §4.K and ot_dsim_machine.c's CMachine_reset, which
// zeroes r_valid_half_limbs unconditionally regardless of clear_regs.
func (c *Core) Reset(instrs []imem.Instruction, dmemWords []wide.Word, startAddr uint32, stopAddr *uint32, clearRegs bool) error {
	c.flags = flags.Groups{}
	c.loops = stacks.LoopStack{}
	c.calls = stacks.CallStack{}
	c.bp.DisarmForceBreak()
	c.regs.ResetValidity()

	if err := c.imemory.Load(instrs); err != nil {
		return err
	}
	c.bp.SetIMEMLen(c.imemory.Len())

	if err := c.dmemory.LoadWords(dmemWords); err != nil {
		return err
	}

	c.pc = startAddr
	if stopAddr != nil {
		c.stopAddr = *stopAddr
	} else if c.imemory.Len() > 0 {
		c.stopAddr = uint32(c.imemory.Len() - 1)
	} else {
		c.stopAddr = 0
	}
	c.finishFlag = false
	c.lastFinishViaBreakpoint = false

	if clearRegs {
		c.ClearRegs()
	}
	return nil
}

// ClearRegs zeroes all WDRs, MOD/DMP/RFP/LC/ACC, resets RND to its
// sentinel, zeroes GPRs and PC. It does not touch validity vectors or
// stacks, per spec.md §4.K and the Open Question recorded in spec.md §9.
func (c *Core) ClearRegs() {
	c.regs.ClearRegs()
	c.pc = 0
}

// RequestFinish latches a halt request honored at the start of the next
// Step call, supplementing the original machine's finish(breakpoint=...)
// with an explicit viaBreakpoint flag so callers can distinguish a
// breakpoint-triggered stop from a program-requested one after the fact,
// via LastFinishWasBreakpoint.
func (c *Core) RequestFinish(viaBreakpoint bool) {
	c.finishFlag = true
	c.lastFinishViaBreakpoint = viaBreakpoint
}

// LastFinishWasBreakpoint reports whether the most recently latched finish
// request was flagged as breakpoint-triggered.
func (c *Core) LastFinishWasBreakpoint() bool {
	return c.lastFinishViaBreakpoint
}
