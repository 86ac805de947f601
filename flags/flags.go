/*
 * otbnsim - Flag groups: default {M,L,Z,C} and extended {XM,XL,XZ,XC}.
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

// Package flags implements the two parallel 4-bit condition flag groups
// (default {M,L,Z,C}, extended {XM,XL,XZ,XC}) packed into a single byte per
// the layout C<<0 | L<<1 | M<<2 | Z<<3 | XC<<4 | XL<<5 | XM<<6 | XZ<<7.
package flags

import "github.com/silicon-sim/otbnsim/otbnerr"

// Name identifies a single flag bit within either group.
type Name int

const (
	M Name = iota
	L
	Z
	C
	XM
	XL
	XZ
	XC
)

func (n Name) String() string {
	switch n {
	case M:
		return "M"
	case L:
		return "L"
	case Z:
		return "Z"
	case C:
		return "C"
	case XM:
		return "XM"
	case XL:
		return "XL"
	case XZ:
		return "XZ"
	case XC:
		return "XC"
	default:
		return "?"
	}
}

// bitPos is the packed-byte bit position for each Name, per spec.md §3.
var bitPos = map[Name]uint{
	C:  0,
	L:  1,
	M:  2,
	Z:  3,
	XC: 4,
	XL: 5,
	XM: 6,
	XZ: 7,
}

// Groups holds both flag groups packed as a single byte.
type Groups struct {
	bin uint8
}

// Get returns the boolean value of flag name.
func (g Groups) Get(name Name) (bool, error) {
	pos, ok := bitPos[name]
	if !ok {
		return false, otbnerr.New(otbnerr.ValueError, "unknown flag name %v", name)
	}
	return g.bin&(1<<pos) != 0, nil
}

// Set returns Groups with flag name set to v.
func (g Groups) Set(name Name, v bool) (Groups, error) {
	pos, ok := bitPos[name]
	if !ok {
		return g, otbnerr.New(otbnerr.ValueError, "unknown flag name %v", name)
	}
	out := g
	if v {
		out.bin |= 1 << pos
	} else {
		out.bin &^= 1 << pos
	}
	return out, nil
}

// AsBin returns the packed 8-bit representation of both groups.
func (g Groups) AsBin() uint8 {
	return g.bin
}

// FromBin builds Groups from a packed 8-bit representation.
func FromBin(b uint8) Groups {
	return Groups{bin: b}
}

// The derivation helpers below take the 256-bit result as a little-endian
// 32-byte buffer and bit 256 (carry/borrow) as a separate bool, since Go has
// no native >64-bit integer: callers derive both from wide.AddC/SubB rather
// than passing a raw 257-bit integer.

// DeriveFull sets C, M, L, Z in the default group from a 256-bit result plus
// an explicit carry/borrow-out bit, per spec.md §4.C:
//
//	C := carryOut; M := bit 255 of result; L := bit 0 of result;
//	Z := result == 0.
func (g Groups) DeriveFull(result [32]byte, carryOut bool) Groups {
	out := g
	out, _ = out.Set(C, carryOut)
	out, _ = out.Set(M, result[31]&0x80 != 0)
	out, _ = out.Set(L, result[0]&0x01 != 0)
	out, _ = out.Set(Z, isZero(result))
	return out
}

// DeriveFullX is the extended-group counterpart of DeriveFull.
func (g Groups) DeriveFullX(result [32]byte, carryOut bool) Groups {
	out := g
	out, _ = out.Set(XC, carryOut)
	out, _ = out.Set(XM, result[31]&0x80 != 0)
	out, _ = out.Set(XL, result[0]&0x01 != 0)
	out, _ = out.Set(XZ, isZero(result))
	return out
}

// SetCML sets only C and M and L, leaving Z unchanged.
func (g Groups) SetCML(result [32]byte, carryOut bool) Groups {
	out := g
	out, _ = out.Set(C, carryOut)
	out, _ = out.Set(M, result[31]&0x80 != 0)
	out, _ = out.Set(L, result[0]&0x01 != 0)
	return out
}

// SetL sets only L, leaving the rest unchanged.
func (g Groups) SetL(result [32]byte) Groups {
	out, _ := g.Set(L, result[0]&0x01 != 0)
	return out
}

// SetZML sets Z, M and L, leaving C unchanged.
func (g Groups) SetZML(result [32]byte) Groups {
	out := g
	out, _ = out.Set(Z, isZero(result))
	out, _ = out.Set(M, result[31]&0x80 != 0)
	out, _ = out.Set(L, result[0]&0x01 != 0)
	return out
}

func isZero(b [32]byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
