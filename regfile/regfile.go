/*
 * otbnsim - register file: 32 WDRs + specials, 32 GPRs with role
 * projections (x0 sink, x1 call-stack mirror, x8..x31 wide-register mirrors).
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

// Package regfile implements the 32 wide data registers plus the five
// special wide registers, the 32 general-purpose registers and their role
// projections, and the half-limb validity tracking of spec.md §3/§4.B.
package regfile

import (
	"github.com/silicon-sim/otbnsim/otbnerr"
	"github.com/silicon-sim/otbnsim/regsel"
	"github.com/silicon-sim/otbnsim/wide"
)

const (
	NumRegs  = 32 // WDRs
	NumGPRs  = 32
	GPRWidth = 32

	// rndSentinel is the 256-bit pattern 0x9999...9999 RND initializes to.
	// Real RND is sourced by the host; this is a fixed, recognizable filler.
)

var rndSentinelLimb uint32 = 0x99999999

func rndSentinel() wide.Word {
	var w wide.Word
	for i := 0; i < wide.Limbs; i++ {
		w, _ = w.SetLimb(i, uint64(rndSentinelLimb))
	}
	return w
}

// CallStack is the minimal capability RegisterFile needs from the call
// stack to implement the x1 push-on-write / pop-on-read projection
// (spec.md §3). The concrete *stacks.CallStack satisfies this.
type CallStack interface {
	Push(addr uint32) error
	Pop() (uint32, error)
}

// RegisterFile holds the 32 WDRs, the five special wide registers, ACC, and
// the 32 GPRs with their role projections.
type RegisterFile struct {
	wdr   [NumRegs]wide.Word
	valid [NumRegs][16]bool // half-limb validity, observational only

	mod, dmp, rfp, lc, rnd, acc wide.Word

	gpr   [NumGPRs]uint32
	calls CallStack
}

// New returns a RegisterFile in its post-init state: all zero except RND,
// no half-limb ever marked valid, wired to calls for the x1 projection.
func New(calls CallStack) *RegisterFile {
	rf := &RegisterFile{calls: calls}
	rf.rnd = rndSentinel()
	return rf
}

// mirrorTarget describes which wide register and limb a mirrored GPR index
// routes to, per spec.md §3 (x8..x15 -> RFP, x16..x23 -> DMP, x24..x31 -> LC).
type mirrorTarget struct {
	sel  regsel.Tag
	limb int
}

func mirrorFor(gprIndex int) (mirrorTarget, bool) {
	switch {
	case gprIndex >= 8 && gprIndex < 16:
		return mirrorTarget{sel: regsel.Rfp, limb: gprIndex - 8}, true
	case gprIndex >= 16 && gprIndex < 24:
		return mirrorTarget{sel: regsel.Dmp, limb: gprIndex - 16}, true
	case gprIndex >= 24 && gprIndex < 32:
		return mirrorTarget{sel: regsel.Lc, limb: gprIndex - 24}, true
	default:
		return mirrorTarget{}, false
	}
}

func (rf *RegisterFile) specialPtr(tag regsel.Tag) *wide.Word {
	switch tag {
	case regsel.Mod:
		return &rf.mod
	case regsel.Dmp:
		return &rf.dmp
	case regsel.Rfp:
		return &rf.rfp
	case regsel.Lc:
		return &rf.lc
	case regsel.Rnd:
		return &rf.rnd
	default:
		return nil
	}
}

// GetWide reads a WDR or special wide register. ACC is reachable only
// through GetACC/SetACC, per spec.md §4.B.
func (rf *RegisterFile) GetWide(sel regsel.Sel) (wide.Word, error) {
	if sel.Tag == regsel.Wdr {
		if sel.Wdr < 0 || sel.Wdr >= NumRegs {
			return wide.Word{}, otbnerr.New(otbnerr.IndexError, "wdr index %d out of range [0,%d)", sel.Wdr, NumRegs)
		}
		return rf.wdr[sel.Wdr], nil
	}
	if p := rf.specialPtr(sel.Tag); p != nil {
		return *p, nil
	}
	return wide.Word{}, otbnerr.New(otbnerr.ValueError, "unknown wide register selector %v", sel)
}

// SetWide writes a WDR or special wide register in full, marking every
// half-limb valid (WDR only). RND is writable through this entry point like
// the other specials; only the WSR space in package csr drops writes to RND.
func (rf *RegisterFile) SetWide(sel regsel.Sel, v wide.Word) error {
	if sel.Tag == regsel.Wdr {
		if sel.Wdr < 0 || sel.Wdr >= NumRegs {
			return otbnerr.New(otbnerr.IndexError, "wdr index %d out of range [0,%d)", sel.Wdr, NumRegs)
		}
		rf.wdr[sel.Wdr] = v
		for h := range rf.valid[sel.Wdr] {
			rf.valid[sel.Wdr][h] = true
		}
		return nil
	}
	if p := rf.specialPtr(sel.Tag); p != nil {
		*p = v
		return nil
	}
	return otbnerr.New(otbnerr.ValueError, "unknown wide register selector %v", sel)
}

// GetACC returns the accumulator register.
func (rf *RegisterFile) GetACC() wide.Word { return rf.acc }

// SetACC replaces the accumulator register.
func (rf *RegisterFile) SetACC(v wide.Word) { rf.acc = v }

// GetRegLimb returns limb i of the register named by sel.
func (rf *RegisterFile) GetRegLimb(sel regsel.Sel, i int) (uint32, error) {
	w, err := rf.GetWide(sel)
	if err != nil {
		return 0, err
	}
	return w.GetLimb(i)
}

// SetRegLimb writes limb i of sel, marking both half-limbs of that limb
// valid (WDR only).
func (rf *RegisterFile) SetRegLimb(sel regsel.Sel, i int, v uint64) error {
	w, err := rf.GetWide(sel)
	if err != nil {
		return err
	}
	w, err = w.SetLimb(i, v)
	if err != nil {
		return err
	}
	if sel.Tag == regsel.Wdr {
		rf.wdr[sel.Wdr] = w
		rf.valid[sel.Wdr][2*i] = true
		rf.valid[sel.Wdr][2*i+1] = true
		return nil
	}
	return rf.SetWide(sel, w)
}

// SetRegHalfLimb writes half-limb i (upper/lower) of sel, marking only that
// half-limb valid (WDR only).
func (rf *RegisterFile) SetRegHalfLimb(sel regsel.Sel, i int, upper bool, v uint32) error {
	w, err := rf.GetWide(sel)
	if err != nil {
		return err
	}
	w, err = w.SetHalfLimb(i, upper, v)
	if err != nil {
		return err
	}
	if sel.Tag == regsel.Wdr {
		rf.wdr[sel.Wdr] = w
		idx := 2 * i
		if upper {
			idx++
		}
		rf.valid[sel.Wdr][idx] = true
		return nil
	}
	return rf.SetWide(sel, w)
}

// GetRegQW returns quarter-word q of sel.
func (rf *RegisterFile) GetRegQW(sel regsel.Sel, q int) (uint64, error) {
	w, err := rf.GetWide(sel)
	if err != nil {
		return 0, err
	}
	return w.GetQW(q)
}

// SetRegHalfWord writes half-word h of sel; the whole register's validity
// is not touched by a half-word write per spec.md (only whole-register and
// limb/half-limb writes are defined as validity-affecting operations).
func (rf *RegisterFile) SetRegHalfWord(sel regsel.Sel, h int, hv [2]uint64) error {
	w, err := rf.GetWide(sel)
	if err != nil {
		return err
	}
	w, err = w.SetHalfWord(h, hv)
	if err != nil {
		return err
	}
	if sel.Tag == regsel.Wdr {
		rf.wdr[sel.Wdr] = w
		return nil
	}
	return rf.SetWide(sel, w)
}

// GetRegValidHalfLimbs returns the 16-entry half-limb validity vector for
// WDR i. Reads never consult validity; this exists purely for observability.
func (rf *RegisterFile) GetRegValidHalfLimbs(i int) ([16]bool, error) {
	if i < 0 || i >= NumRegs {
		return [16]bool{}, otbnerr.New(otbnerr.IndexError, "wdr index %d out of range [0,%d)", i, NumRegs)
	}
	return rf.valid[i], nil
}

// GetGPR returns GPR i, applying the role projections of spec.md §3: x0
// always reads 0; x1 pops the call stack; x8..x31 read the mirrored wide
// register's limb (the wide register is authoritative).
func (rf *RegisterFile) GetGPR(i int) (uint32, error) {
	if i < 0 || i >= NumGPRs {
		return 0, otbnerr.New(otbnerr.IndexError, "gpr index %d out of range [0,%d)", i, NumGPRs)
	}
	switch {
	case i == 0:
		return 0, nil
	case i == 1:
		addr, err := rf.calls.Pop()
		if err != nil {
			return 0, err
		}
		return addr, nil
	default:
		if mt, ok := mirrorFor(i); ok {
			return rf.GetRegLimb(regsel.Sel{Tag: mt.sel}, mt.limb)
		}
		return rf.gpr[i], nil
	}
}

// SetGPR writes GPR i, applying the role projections of spec.md §3: writes
// to x0 are dropped; a write to x1 also pushes onto the call stack; writes
// to x8..x31 write both the GPR slot and the mirrored wide register limb.
func (rf *RegisterFile) SetGPR(i int, v uint32) error {
	if i < 0 || i >= NumGPRs {
		return otbnerr.New(otbnerr.IndexError, "gpr index %d out of range [0,%d)", i, NumGPRs)
	}
	switch {
	case i == 0:
		return nil
	case i == 1:
		rf.gpr[1] = v
		return rf.calls.Push(v)
	default:
		rf.gpr[i] = v
		if mt, ok := mirrorFor(i); ok {
			return rf.SetRegLimb(regsel.Sel{Tag: mt.sel}, mt.limb, uint64(v))
		}
		return nil
	}
}

// IncGPR sets gpr[i] = (gpr[i]+1) mod 2^32, routed through SetGPR so x1
// would push and mirrored registers would update, per spec.md §4.B.
func (rf *RegisterFile) IncGPR(i int) error {
	cur, err := rf.peekGPR(i)
	if err != nil {
		return err
	}
	return rf.SetGPR(i, cur+1)
}

// IncGPRWlenBytes sets gpr[i] = (gpr[i] + XLEN/8) mod 2^32, same routing as IncGPR.
func (rf *RegisterFile) IncGPRWlenBytes(i int) error {
	cur, err := rf.peekGPR(i)
	if err != nil {
		return err
	}
	return rf.SetGPR(i, cur+wide.XLen/8)
}

// peekGPR reads the current value to increment without the x1-pop side
// effect that GetGPR would apply: increment reads the raw slot (or, for
// x8..x31, the mirrored wide-register limb, as GetGPR does), since
// "increment x1" is a write-only idiom in the ISA this core serves and must
// not also perform a call-stack pop as a side effect of computing the
// addend.
func (rf *RegisterFile) peekGPR(i int) (uint32, error) {
	if i < 0 || i >= NumGPRs {
		return 0, otbnerr.New(otbnerr.IndexError, "gpr index %d out of range [0,%d)", i, NumGPRs)
	}
	if i == 0 {
		return 0, nil
	}
	if mt, ok := mirrorFor(i); ok {
		return rf.GetRegLimb(regsel.Sel{Tag: mt.sel}, mt.limb)
	}
	return rf.gpr[i], nil
}

// ClearRegs zeroes all WDRs, MOD/DMP/RFP/LC/ACC, resets RND to its
// sentinel, and zeroes all GPRs. Validity vectors are left untouched, per
// spec.md §4.K and the Open Question in §9.
func (rf *RegisterFile) ClearRegs() {
	for i := range rf.wdr {
		rf.wdr[i] = wide.Word{}
	}
	rf.mod = wide.Word{}
	rf.dmp = wide.Word{}
	rf.rfp = wide.Word{}
	rf.lc = wide.Word{}
	rf.acc = wide.Word{}
	rf.rnd = rndSentinel()
	for i := range rf.gpr {
		rf.gpr[i] = 0
	}
}

// ResetValidity clears every half-limb validity bit, used by Core.Reset
// (full lifecycle reset), distinct from ClearRegs which leaves validity
// alone per the Open Question recorded in spec.md §9.
func (rf *RegisterFile) ResetValidity() {
	for i := range rf.valid {
		for h := range rf.valid[i] {
			rf.valid[i][h] = false
		}
	}
}
