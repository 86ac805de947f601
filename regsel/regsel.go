/*
 * otbnsim - tagged wide-register selector.
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

// Package regsel implements the exhaustively-dispatched wide-register
// selector design note of spec.md §9: a tagged variant replacing the
// name/integer polymorphism of the original interface
// (RegSel = Wdr(u5) | Mod | Dmp | Rfp | Lc | Rnd).
package regsel

import "github.com/silicon-sim/otbnsim/otbnerr"

// Tag discriminates the selector variants.
type Tag int

const (
	Wdr Tag = iota
	Mod
	Dmp
	Rfp
	Lc
	Rnd
)

// Sel is a wide-register selector: either a WDR index (0..31) or one of the
// named special wide registers.
type Sel struct {
	Tag Tag
	Wdr int // valid only when Tag == Wdr
}

// ByIndex builds a WDR selector for index i, 0 <= i < 32.
func ByIndex(i int) (Sel, error) {
	if i < 0 || i >= 32 {
		return Sel{}, otbnerr.New(otbnerr.IndexError, "wdr index %d out of range [0,32)", i)
	}
	return Sel{Tag: Wdr, Wdr: i}, nil
}

// ByName builds a named special-register selector from one of
// "mod", "dmp", "rfp", "lc", "rnd" (case-sensitive, matching spec.md §4.B).
func ByName(name string) (Sel, error) {
	switch name {
	case "mod":
		return Sel{Tag: Mod}, nil
	case "dmp":
		return Sel{Tag: Dmp}, nil
	case "rfp":
		return Sel{Tag: Rfp}, nil
	case "lc":
		return Sel{Tag: Lc}, nil
	case "rnd":
		return Sel{Tag: Rnd}, nil
	default:
		return Sel{}, otbnerr.New(otbnerr.TypeError, "unknown wide register selector %q", name)
	}
}

func (s Sel) String() string {
	switch s.Tag {
	case Wdr:
		return "w" + itoa(s.Wdr)
	case Mod:
		return "mod"
	case Dmp:
		return "dmp"
	case Rfp:
		return "rfp"
	case Lc:
		return "lc"
	case Rnd:
		return "rnd"
	default:
		return "?"
	}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [8]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}
