/*
 * otbnsim - data memory: 128 x 256-bit entries with per-entry
 * initialized tracking and a byte-addressed view.
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

// Package dmem implements the 128-entry, 256-bit-wide data memory of
// spec.md §4.E, both the word-addressed view used by wide-register
// load/store instructions and the byte-addressed view OTBN instructions
// actually encode.
package dmem

import (
	"github.com/silicon-sim/otbnsim/otbnerr"
	"github.com/silicon-sim/otbnsim/wide"
)

// NumWords is the number of 256-bit entries in data memory.
const NumWords = 128

// WordBytes is the byte width of one entry (32 bytes = 256 bits).
const WordBytes = wide.XLen / 8

// UninitializedRead is emitted (via the OnUninitializedRead callback, if
// set) whenever GetWord, or a byte-addressed accessor built on it, observes
// an entry that was never written since the last Reset/bulk replace.
type UninitializedRead struct {
	WordIndex int
}

// Memory is the flat 128-word data memory.
type Memory struct {
	words [NumWords]wide.Word
	init  [NumWords]bool

	// OnUninitializedRead, if non-nil, is invoked whenever a read observes
	// an uninitialized entry; wired to the ambient logger by the owning
	// core rather than imported directly, keeping this package log-free.
	OnUninitializedRead func(UninitializedRead)
}

// New returns an empty Memory; every entry reads as zero but is marked
// uninitialized until written.
func New() *Memory {
	return &Memory{}
}

func checkWordIndex(i int) error {
	if i < 0 || i >= NumWords {
		return otbnerr.New(otbnerr.IndexError, "dmem word index %d out of range [0,%d)", i, NumWords)
	}
	return nil
}

// GetWord returns entry i. Reading an entry that was never written still
// succeeds (it reads as zero) but reports an UninitializedRead.
func (m *Memory) GetWord(i int) (wide.Word, error) {
	if err := checkWordIndex(i); err != nil {
		return wide.Word{}, err
	}
	if !m.init[i] && m.OnUninitializedRead != nil {
		m.OnUninitializedRead(UninitializedRead{WordIndex: i})
	}
	return m.words[i], nil
}

// SetWord writes entry i in full and marks it initialized.
func (m *Memory) SetWord(i int, v wide.Word) error {
	if err := checkWordIndex(i); err != nil {
		return err
	}
	m.words[i] = v
	m.init[i] = true
	return nil
}

// IsInitialized reports whether entry i has been written since the last
// Reset or LoadWords call.
func (m *Memory) IsInitialized(i int) (bool, error) {
	if err := checkWordIndex(i); err != nil {
		return false, err
	}
	return m.init[i], nil
}

// Reset zeroes every entry and clears all initialized bits, per spec.md §4.K.
func (m *Memory) Reset() {
	for i := range m.words {
		m.words[i] = wide.Word{}
		m.init[i] = false
	}
}

// LoadWords bulk-replaces data memory (e.g. to seed .data section contents
// at Init time) and marks every loaded entry initialized; entries beyond
// len(words) are zeroed and left uninitialized.
func (m *Memory) LoadWords(words []wide.Word) error {
	if len(words) > NumWords {
		return otbnerr.New(otbnerr.OverflowError, "dmem load overflow: %d words exceeds capacity %d", len(words), NumWords)
	}
	for i := range m.words {
		if i < len(words) {
			m.words[i] = words[i]
			m.init[i] = true
		} else {
			m.words[i] = wide.Word{}
			m.init[i] = false
		}
	}
	return nil
}

func wordAndLimbForByteAddr(byteAddr uint32) (wordIdx, limbIdx int) {
	wordIdx = int(byteAddr) / WordBytes
	offsetInWord := int(byteAddr) % WordBytes
	limbIdx = offsetInWord / 4
	return
}

// GetLimbAtByteAddr returns the 32-bit limb addressed by byteAddr, using the
// byte-addressed view every real OTBN load/store instruction encodes:
// word index = byteAddr/32, limb index = (byteAddr%32)/4. byteAddr must be
// limb-aligned (a multiple of 4).
func (m *Memory) GetLimbAtByteAddr(byteAddr uint32) (uint32, error) {
	if byteAddr%4 != 0 {
		return 0, otbnerr.New(otbnerr.ValueError, "dmem byte address %#x is not limb-aligned", byteAddr)
	}
	wordIdx, limbIdx := wordAndLimbForByteAddr(byteAddr)
	w, err := m.GetWord(wordIdx)
	if err != nil {
		return 0, otbnerr.New(otbnerr.IndexError, "dmem byte address %#x out of range: %v", byteAddr, err)
	}
	return w.GetLimb(limbIdx)
}

// SetLimbAtByteAddr writes the 32-bit limb addressed by byteAddr, marking
// the containing word initialized. byteAddr must be limb-aligned.
func (m *Memory) SetLimbAtByteAddr(byteAddr uint32, v uint32) error {
	if byteAddr%4 != 0 {
		return otbnerr.New(otbnerr.ValueError, "dmem byte address %#x is not limb-aligned", byteAddr)
	}
	wordIdx, limbIdx := wordAndLimbForByteAddr(byteAddr)
	w, err := m.GetWord(wordIdx)
	if err != nil {
		return otbnerr.New(otbnerr.IndexError, "dmem byte address %#x out of range: %v", byteAddr, err)
	}
	w, err = w.SetLimb(limbIdx, uint64(v))
	if err != nil {
		return err
	}
	return m.SetWord(wordIdx, w)
}

// GetWordAtByteAddr returns the full 256-bit entry containing byteAddr,
// which must be word-aligned (a multiple of WordBytes) — the view wide
// load/store instructions (bn.lid/bn.sid) actually use.
func (m *Memory) GetWordAtByteAddr(byteAddr uint32) (wide.Word, error) {
	if byteAddr%WordBytes != 0 {
		return wide.Word{}, otbnerr.New(otbnerr.ValueError, "dmem byte address %#x is not word-aligned", byteAddr)
	}
	wordIdx, _ := wordAndLimbForByteAddr(byteAddr)
	return m.GetWord(wordIdx)
}

// SetWordAtByteAddr writes the full 256-bit entry containing byteAddr,
// which must be word-aligned.
func (m *Memory) SetWordAtByteAddr(byteAddr uint32, v wide.Word) error {
	if byteAddr%WordBytes != 0 {
		return otbnerr.New(otbnerr.ValueError, "dmem byte address %#x is not word-aligned", byteAddr)
	}
	wordIdx, _ := wordAndLimbForByteAddr(byteAddr)
	return m.SetWord(wordIdx, v)
}
