/*
 * otbnsim - address breakpoints and the stack-depth-keyed force-break.
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

// Package breakpoint implements the two independent breakpoint mechanisms
// of spec.md §4.H: an address-keyed pass-counter table, and a one-shot
// force-break predicate keyed on call/loop stack depth rather than PC.
package breakpoint

import "github.com/silicon-sim/otbnsim/otbnerr"

// entry tracks the pass-count state for one address breakpoint.
type entry struct {
	passes  int
	counter int
}

// Hit describes a single breakpoint (or force-break) event for the caller
// to render, per spec.md's "Breakpoint hit at address %d [at pass %d]."
type Hit struct {
	Addr      uint32
	Passes    int // 0 when the hit came from force-break (no pass count to report).
	ForceBreak bool
}

// Controller owns both breakpoint mechanisms for one Core.
type Controller struct {
	table   map[uint32]entry
	imemLen int

	fbActive           bool
	fbConsiderCallStack bool
	fbCallStackDepth   int
	fbConsiderLoopStack bool
	fbLoopStackDepth   int
}

// New returns a Controller that rejects addresses outside [0, imemLen).
func New(imemLen int) *Controller {
	return &Controller{table: make(map[uint32]entry), imemLen: imemLen}
}

// SetIMEMLen updates the valid address range, used when IMEM is replaced.
func (c *Controller) SetIMEMLen(n int) {
	c.imemLen = n
}

func (c *Controller) checkAddr(addr uint32) error {
	if int(addr) < 0 || int(addr) >= c.imemLen {
		return otbnerr.New(otbnerr.IndexError, "breakpoint address %d out of range [0,%d)", addr, c.imemLen)
	}
	return nil
}

// Set installs (or replaces) an address breakpoint with the given pass count.
func (c *Controller) Set(addr uint32, passes int) error {
	if err := c.checkAddr(addr); err != nil {
		return err
	}
	c.table[addr] = entry{passes: passes, counter: 1}
	return nil
}

// Toggle removes the breakpoint at addr if present, otherwise installs one
// with the given pass count and its counter at 1.
func (c *Controller) Toggle(addr uint32, passes int) error {
	if err := c.checkAddr(addr); err != nil {
		return err
	}
	if _, ok := c.table[addr]; ok {
		delete(c.table, addr)
		return nil
	}
	c.table[addr] = entry{passes: passes, counter: 1}
	return nil
}

// Clear removes the breakpoint at addr, if any.
func (c *Controller) Clear(addr uint32) {
	delete(c.table, addr)
}

// ClearAll removes every address breakpoint.
func (c *Controller) ClearAll() {
	c.table = make(map[uint32]entry)
}

// All returns a snapshot of addr -> passes for every installed breakpoint.
func (c *Controller) All() map[uint32]int {
	out := make(map[uint32]int, len(c.table))
	for addr, e := range c.table {
		out[addr] = e.passes
	}
	return out
}

// ArmForceBreak arms the one-shot force-break predicate. See spec.md §4.H
// for the exact evaluation rule applied on the next Check call.
func (c *Controller) ArmForceBreak(considerCallStack bool, callStackDepth int, considerLoopStack bool, loopStackDepth int) {
	c.fbActive = true
	c.fbConsiderCallStack = considerCallStack
	c.fbCallStackDepth = callStackDepth
	c.fbConsiderLoopStack = considerLoopStack
	c.fbLoopStackDepth = loopStackDepth
}

// DisarmForceBreak clears the force-break predicate without firing it.
func (c *Controller) DisarmForceBreak() {
	c.fbActive = false
}

// ForceBreakArmed reports whether a force-break is currently pending.
func (c *Controller) ForceBreakArmed() bool {
	return c.fbActive
}

// Check evaluates, in order, the force-break predicate and then the address
// table for the current pc/loopSP/callSP, per spec.md §4.H. At most one Hit
// is returned per call; a hit never halts or pauses execution by itself.
func (c *Controller) Check(pc uint32, loopSP, callSP int) (Hit, bool) {
	if c.fbActive {
		hit := false
		switch {
		case c.fbConsiderLoopStack && loopSP == c.fbLoopStackDepth:
			hit = true
		case c.fbConsiderCallStack && callSP == c.fbCallStackDepth:
			hit = true
		case !c.fbConsiderCallStack && !c.fbConsiderLoopStack:
			hit = true
		}
		if hit {
			c.fbActive = false
			return Hit{Addr: pc, ForceBreak: true}, true
		}
	}

	if e, ok := c.table[pc]; ok {
		if e.counter == e.passes {
			c.table[pc] = entry{passes: e.passes, counter: 1}
			return Hit{Addr: pc, Passes: e.passes}, true
		}
		c.table[pc] = entry{passes: e.passes, counter: e.counter + 1}
	}
	return Hit{}, false
}
