/*
 * otbnsim - bounded LIFO loop and call stacks.
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

// Package stacks implements the two bounded LIFO structures driving
// hardware loops and subroutine calls: LoopStack (count, end, start frames)
// and CallStack (return addresses). Depth is capped at 16 for both, per the
// OTBN architecture.
package stacks

import "github.com/silicon-sim/otbnsim/otbnerr"

const Depth = 16

// LoopFrame is one hardware-loop nesting level.
type LoopFrame struct {
	Cnt      uint32
	EndAddr  uint32
	StartAddr uint32
}

// LoopStack is a bounded stack of LoopFrame, depth <= Depth.
type LoopStack struct {
	frames []LoopFrame
}

// Push pushes a new loop frame. Overflow at depth Depth fails with OverflowError.
func (s *LoopStack) Push(cnt, end, start uint32) error {
	if len(s.frames) >= Depth {
		return otbnerr.New(otbnerr.OverflowError, "loop stack overflow: depth limit %d reached", Depth)
	}
	s.frames = append(s.frames, LoopFrame{Cnt: cnt, EndAddr: end, StartAddr: start})
	return nil
}

// Pop removes and returns the start address of the top loop frame. Popping
// an empty stack is an OverflowError (generic stack underflow, per spec.md §7).
func (s *LoopStack) Pop() (uint32, error) {
	if len(s.frames) == 0 {
		return 0, otbnerr.New(otbnerr.OverflowError, "loop stack underflow")
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top.StartAddr, nil
}

// DecTopCnt decrements the top frame's Cnt and returns true if it was > 0;
// returns false without mutating if Cnt was already 0.
func (s *LoopStack) DecTopCnt() (bool, error) {
	if len(s.frames) == 0 {
		return false, otbnerr.New(otbnerr.RuntimeError, "loop stack empty")
	}
	top := &s.frames[len(s.frames)-1]
	if top.Cnt == 0 {
		return false, nil
	}
	top.Cnt--
	return true, nil
}

// TopEndAddr returns the end address of the top frame. Inspecting an empty
// stack is a RuntimeError per spec.md §4.F.
func (s *LoopStack) TopEndAddr() (uint32, error) {
	if len(s.frames) == 0 {
		return 0, otbnerr.New(otbnerr.RuntimeError, "loop stack empty")
	}
	return s.frames[len(s.frames)-1].EndAddr, nil
}

// TopStartAddr returns the start address of the top frame.
func (s *LoopStack) TopStartAddr() (uint32, error) {
	if len(s.frames) == 0 {
		return 0, otbnerr.New(otbnerr.RuntimeError, "loop stack empty")
	}
	return s.frames[len(s.frames)-1].StartAddr, nil
}

// TopCnt returns the remaining iteration count of the top frame.
func (s *LoopStack) TopCnt() (uint32, error) {
	if len(s.frames) == 0 {
		return 0, otbnerr.New(otbnerr.RuntimeError, "loop stack empty")
	}
	return s.frames[len(s.frames)-1].Cnt, nil
}

// Depth returns the current number of loop frames.
func (s *LoopStack) Depth() int {
	return len(s.frames)
}

// Empty reports whether the stack holds no frames.
func (s *LoopStack) Empty() bool {
	return len(s.frames) == 0
}

// Clear empties the stack.
func (s *LoopStack) Clear() {
	s.frames = nil
}

// CallStack is a bounded LIFO of return addresses, depth <= Depth.
type CallStack struct {
	addrs []uint32
}

// Push pushes a return address. Overflow at depth Depth fails with OverflowError.
func (s *CallStack) Push(addr uint32) error {
	if len(s.addrs) >= Depth {
		return otbnerr.New(otbnerr.OverflowError, "call stack overflow: depth limit %d reached", Depth)
	}
	s.addrs = append(s.addrs, addr)
	return nil
}

// Pop pops the most recently pushed return address. Popping an empty stack
// fails with the distinct CallStackUnderrun kind (a subtype of OverflowError).
func (s *CallStack) Pop() (uint32, error) {
	if len(s.addrs) == 0 {
		return 0, otbnerr.New(otbnerr.CallStackUnderrun, "call stack underrun")
	}
	top := s.addrs[len(s.addrs)-1]
	s.addrs = s.addrs[:len(s.addrs)-1]
	return top, nil
}

// Depth returns the current number of entries on the call stack.
func (s *CallStack) Depth() int {
	return len(s.addrs)
}

// Empty reports whether the stack holds no entries.
func (s *CallStack) Empty() bool {
	return len(s.addrs) == 0
}

// Clear empties the stack.
func (s *CallStack) Clear() {
	s.addrs = nil
}
