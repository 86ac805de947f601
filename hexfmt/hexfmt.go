/*
 * otbnsim - hex formatting helpers for trace consumers.
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

// Package hexfmt renders wide-register values as the lowercase hex text
// trace consumers expect, in the manner of the teacher's util/hex package
// (a manual digit table written through a strings.Builder) but lowercase
// and with the "0x"-prefixed / bare-limb conventions spec.md §6 specifies.
package hexfmt

import (
	"strings"

	"github.com/silicon-sim/otbnsim/wide"
)

const hexDigits = "0123456789abcdef"

func writeLimb(b *strings.Builder, v uint32) {
	shift := 28
	for range 8 {
		b.WriteByte(hexDigits[(v>>shift)&0xf])
		shift -= 4
	}
}

// LimbHex returns "0x" followed by 8 lowercase hex digits for limb i of v.
func LimbHex(v wide.Word, i int) (string, error) {
	limb, err := v.GetLimb(i)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(10)
	b.WriteString("0x")
	writeLimb(&b, limb)
	return b.String(), nil
}

// XlenHex returns v as eight 32-bit limbs, high-to-low, space-separated,
// lowercase, no "0x" prefix: exactly 71 characters (8*8 digits + 7 spaces).
func XlenHex(v wide.Word) string {
	limbs := v.Limbs()
	var b strings.Builder
	b.Grow(71)
	for i := wide.Limbs - 1; i >= 0; i-- {
		writeLimb(&b, limbs[i])
		if i != 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
