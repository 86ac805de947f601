/*
 * otbnsim - 256-bit WideWord: limb/half-limb/half-word/quarter-word views.
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

// Package wide implements the 256-bit WideWord value used by every wide
// register in the simulator: 8 little-endian 32-bit limbs, sliceable at
// byte, half-limb (16-bit), limb (32-bit), quarter-word (64-bit) and
// half-word (128-bit) granularity. All mutators are functional: they return
// a new Word and never alias the receiver.
package wide

import "github.com/silicon-sim/otbnsim/otbnerr"

const (
	XLen         = 256
	LimbBits     = 32
	Limbs        = 8
	HalfLimbBits = 16
	QWBits       = 64
	HWBits       = 128
)

// Word is a 256-bit unsigned value stored as 8 little-endian 32-bit limbs,
// Word.limb[0] holding bits [0,32).
type Word struct {
	limb [Limbs]uint32
}

// Zero is the zero-valued Word; present for readability at call sites.
var Zero = Word{}

// FromLimbs builds a Word from 8 little-endian limbs.
func FromLimbs(limbs [Limbs]uint32) Word {
	return Word{limb: limbs}
}

// Limbs returns the 8 little-endian limbs of w.
func (w Word) Limbs() [Limbs]uint32 {
	return w.limb
}

func checkLimbIndex(i int) error {
	if i < 0 || i >= Limbs {
		return otbnerr.New(otbnerr.IndexError, "limb index %d out of range [0,%d)", i, Limbs)
	}
	return nil
}

// GetLimb returns the 32-bit limb i (0-based, little-endian).
func (w Word) GetLimb(i int) (uint32, error) {
	if err := checkLimbIndex(i); err != nil {
		return 0, err
	}
	return w.limb[i], nil
}

// SetLimb returns a new Word with limb i replaced by v. v must fit in 32 bits.
func (w Word) SetLimb(i int, v uint64) (Word, error) {
	if err := checkLimbIndex(i); err != nil {
		return w, err
	}
	if v > 0xFFFFFFFF {
		return w, otbnerr.New(otbnerr.OverflowError, "limb value %#x does not fit in 32 bits", v)
	}
	out := w
	out.limb[i] = uint32(v)
	return out, nil
}

// GetHalfLimb returns the 16-bit half-limb i (upper half if upper is true).
func (w Word) GetHalfLimb(i int, upper bool) (uint16, error) {
	if err := checkLimbIndex(i); err != nil {
		return 0, err
	}
	if upper {
		return uint16(w.limb[i] >> HalfLimbBits), nil
	}
	return uint16(w.limb[i] & 0xFFFF), nil
}

// SetHalfLimb returns a new Word with half-limb i (upper/lower) replaced by v.
// v must fit in 16 bits.
func (w Word) SetHalfLimb(i int, upper bool, v uint32) (Word, error) {
	if err := checkLimbIndex(i); err != nil {
		return w, err
	}
	if v > 0xFFFF {
		return w, otbnerr.New(otbnerr.OverflowError, "half-limb value %#x does not fit in 16 bits", v)
	}
	out := w
	if upper {
		out.limb[i] = (out.limb[i] & 0xFFFF) | (v << HalfLimbBits)
	} else {
		out.limb[i] = (out.limb[i] &^ 0xFFFF) | v
	}
	return out, nil
}

func checkHalfWordIndex(h int) error {
	if h != 0 && h != 1 {
		return otbnerr.New(otbnerr.IndexError, "half-word index %d out of range {0,1}", h)
	}
	return nil
}

// GetHalfWord returns the 128-bit half-word h (0 = low, 1 = high) as a
// [2]uint64 little-endian pair {lowQW, highQW}.
func (w Word) GetHalfWord(h int) ([2]uint64, error) {
	if err := checkHalfWordIndex(h); err != nil {
		return [2]uint64{}, err
	}
	base := h * 4
	lo := uint64(w.limb[base]) | uint64(w.limb[base+1])<<32
	hi := uint64(w.limb[base+2]) | uint64(w.limb[base+3])<<32
	return [2]uint64{lo, hi}, nil
}

// SetHalfWord zeroes the 128 bits of half h and ORs in hv (a little-endian
// {lowQW, highQW} pair); the other half is left byte-identical.
func (w Word) SetHalfWord(h int, hv [2]uint64) (Word, error) {
	if err := checkHalfWordIndex(h); err != nil {
		return w, err
	}
	out := w
	base := h * 4
	out.limb[base] = uint32(hv[0])
	out.limb[base+1] = uint32(hv[0] >> 32)
	out.limb[base+2] = uint32(hv[1])
	out.limb[base+3] = uint32(hv[1] >> 32)
	return out, nil
}

func checkQWIndex(q int) error {
	if q < 0 || q >= 4 {
		return otbnerr.New(otbnerr.IndexError, "quarter-word index %d out of range [0,4)", q)
	}
	return nil
}

// GetQW returns the 64-bit quarter-word q (0-based, little-endian).
func (w Word) GetQW(q int) (uint64, error) {
	if err := checkQWIndex(q); err != nil {
		return 0, err
	}
	base := q * 2
	return uint64(w.limb[base]) | uint64(w.limb[base+1])<<32, nil
}

// SetQW returns a new Word with quarter-word q replaced by v.
func (w Word) SetQW(q int, v uint64) (Word, error) {
	if err := checkQWIndex(q); err != nil {
		return w, err
	}
	out := w
	base := q * 2
	out.limb[base] = uint32(v)
	out.limb[base+1] = uint32(v >> 32)
	return out, nil
}
