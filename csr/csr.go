/*
 * otbnsim - CSR and WSR addressable namespaces, projected onto the register file.
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

// Package csr implements the CSR and WSR addressable namespaces of
// spec.md §4.D, both of which are pure projections onto the RegisterFile's
// flags and special wide registers — this package owns no state of its own.
package csr

import (
	"github.com/silicon-sim/otbnsim/flags"
	"github.com/silicon-sim/otbnsim/otbnerr"
	"github.com/silicon-sim/otbnsim/regsel"
	"github.com/silicon-sim/otbnsim/wide"
)

// CSR address map, per spec.md §6.
const (
	Flag        = 0x7C0
	ModBase     = 0x7D0 // 0x7D0..0x7D7 are limbs 0..7 of MOD.
	RNG         = 0xFC0
)

// WSR indices, per spec.md §6.
const (
	WsrMod = 0
	WsrRnd = 1
)

// RegisterFile is the subset of regfile.RegisterFile this package projects onto.
type RegisterFile interface {
	GetWide(sel regsel.Sel) (wide.Word, error)
	SetWide(sel regsel.Sel, v wide.Word) error
	GetRegLimb(sel regsel.Sel, i int) (uint32, error)
	SetRegLimb(sel regsel.Sel, i int, v uint64) error
}

// Space binds the CSR/WSR namespaces to a RegisterFile and the flag groups,
// which live alongside the register file in the owning Core.
type Space struct {
	regs  RegisterFile
	flags *flags.Groups
}

// New returns a Space projecting onto regs and flags.
func New(regs RegisterFile, flagGroups *flags.Groups) *Space {
	return &Space{regs: regs, flags: flagGroups}
}

// GetCSR reads a control/status register by address.
func (s *Space) GetCSR(addr uint32) (uint32, error) {
	switch {
	case addr == Flag:
		return uint32(s.flags.AsBin()), nil
	case addr >= ModBase && addr < ModBase+8:
		return s.regs.GetRegLimb(regsel.Sel{Tag: regsel.Mod}, int(addr-ModBase))
	case addr == RNG:
		return s.regs.GetRegLimb(regsel.Sel{Tag: regsel.Rnd}, 0)
	default:
		return 0, otbnerr.New(otbnerr.ValueError, "unknown CSR address %#x", addr)
	}
}

// SetCSR writes a control/status register by address.
func (s *Space) SetCSR(addr uint32, v uint32) error {
	switch {
	case addr == Flag:
		*s.flags = flags.FromBin(uint8(v))
		return nil
	case addr >= ModBase && addr < ModBase+8:
		return s.regs.SetRegLimb(regsel.Sel{Tag: regsel.Mod}, int(addr-ModBase), uint64(v))
	case addr == RNG:
		// RND is read-only at the CSR layer too; silently ignore the write,
		// matching the WSR behavior for the same register (spec.md §4.D).
		return nil
	default:
		return otbnerr.New(otbnerr.ValueError, "unknown CSR address %#x", addr)
	}
}

// GetWSR reads a wide special register by WSR index.
func (s *Space) GetWSR(index int) (wide.Word, error) {
	switch index {
	case WsrMod:
		return s.regs.GetWide(regsel.Sel{Tag: regsel.Mod})
	case WsrRnd:
		return s.regs.GetWide(regsel.Sel{Tag: regsel.Rnd})
	default:
		return wide.Word{}, otbnerr.New(otbnerr.ValueError, "unknown WSR index %d", index)
	}
}

// SetWSR writes a wide special register by WSR index. Writes to WSR_RND are
// silently dropped, per spec.md §4.D.
func (s *Space) SetWSR(index int, v wide.Word) error {
	switch index {
	case WsrMod:
		return s.regs.SetWide(regsel.Sel{Tag: regsel.Mod}, v)
	case WsrRnd:
		return nil
	default:
		return otbnerr.New(otbnerr.ValueError, "unknown WSR index %d", index)
	}
}
