/*
 * otbnsim - byte-oriented 256-bit buffer helpers backing flag derivation.
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

package wide

// The helpers in this file work on a 32-byte little-endian buffer view of a
// 256-bit value, byte 0 holding bits [0,8). They exist to feed
// flags.DeriveFull and friends a carry/borrow-bearing result; the step
// engine itself does not call them — arithmetic (BN.ADD, BN.MUL, ...) is an
// instruction body's responsibility, not the core's.

// Bytes returns w as a little-endian 32-byte buffer.
func (w Word) Bytes() [32]byte {
	var b [32]byte
	for i := 0; i < Limbs; i++ {
		b[4*i] = byte(w.limb[i])
		b[4*i+1] = byte(w.limb[i] >> 8)
		b[4*i+2] = byte(w.limb[i] >> 16)
		b[4*i+3] = byte(w.limb[i] >> 24)
	}
	return b
}

// FromBytes builds a Word from a little-endian 32-byte buffer.
func FromBytes(b [32]byte) Word {
	var w Word
	for i := 0; i < Limbs; i++ {
		w.limb[i] = uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
	}
	return w
}

// AddC returns a+b and the carry out of bit 255.
func AddC(a, b [32]byte) ([32]byte, bool) {
	var out [32]byte
	var carry uint16
	for i := 0; i < 32; i++ {
		sum := uint16(a[i]) + uint16(b[i]) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	return out, carry != 0
}

// SubB returns a-b and the borrow out of bit 255.
func SubB(a, b [32]byte) ([32]byte, bool) {
	var out [32]byte
	var borrow int16
	for i := 0; i < 32; i++ {
		diff := int16(a[i]) - int16(b[i]) - borrow
		if diff < 0 {
			diff += 256
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(diff)
	}
	return out, borrow != 0
}

// And returns the bitwise AND of a and b.
func And(a, b [32]byte) [32]byte {
	var out [32]byte
	for i := 0; i < 32; i++ {
		out[i] = a[i] & b[i]
	}
	return out
}

// Or returns the bitwise OR of a and b.
func Or(a, b [32]byte) [32]byte {
	var out [32]byte
	for i := 0; i < 32; i++ {
		out[i] = a[i] | b[i]
	}
	return out
}

// Xor returns the bitwise XOR of a and b.
func Xor(a, b [32]byte) [32]byte {
	var out [32]byte
	for i := 0; i < 32; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// Not returns the bitwise complement of a.
func Not(a [32]byte) [32]byte {
	var out [32]byte
	for i := 0; i < 32; i++ {
		out[i] = ^a[i]
	}
	return out
}

// Shl returns a shifted left by n bits (logical); n >= 256 yields zero.
func Shl(a [32]byte, n int) [32]byte {
	var out [32]byte
	if n >= 256 || n < 0 {
		return out
	}
	byteShift := n / 8
	bitShift := uint(n % 8)
	for i := 31; i >= 0; i-- {
		srcIdx := i - byteShift
		if srcIdx < 0 {
			continue
		}
		var v byte = a[srcIdx] << bitShift
		if bitShift != 0 && srcIdx-1 >= 0 {
			v |= a[srcIdx-1] >> (8 - bitShift)
		}
		out[i] = v
	}
	return out
}

// Shr returns a shifted right by n bits (logical, no sign extension); n >=
// 256 yields zero.
func Shr(a [32]byte, n int) [32]byte {
	var out [32]byte
	if n >= 256 || n < 0 {
		return out
	}
	byteShift := n / 8
	bitShift := uint(n % 8)
	for i := 0; i < 32; i++ {
		srcIdx := i + byteShift
		if srcIdx > 31 {
			continue
		}
		var v byte = a[srcIdx] >> bitShift
		if bitShift != 0 && srcIdx+1 <= 31 {
			v |= a[srcIdx+1] << (8 - bitShift)
		}
		out[i] = v
	}
	return out
}
