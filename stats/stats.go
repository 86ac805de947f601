/*
 * otbnsim - opcode histogram accumulator.
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

// Package stats accumulates an opcode -> execution count histogram. Order
// of first-seen insertion is preserved for human-readable dumps but is not
// an architectural contract (spec.md §9).
package stats

import "strings"

// ExtractOpcode splits an assembly-text string on whitespace and returns
// the first (trimmed) token, per spec.md §4.I step 3.
func ExtractOpcode(asmText string) string {
	fields := strings.Fields(asmText)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimSpace(fields[0])
}

// Histogram counts opcode occurrences, preserving first-seen order.
type Histogram struct {
	counts map[string]int
	order  []string
}

// NewHistogram returns an empty Histogram.
func NewHistogram() *Histogram {
	return &Histogram{counts: make(map[string]int)}
}

// Bump increments the count for opcode by one, inserting it if new.
func (h *Histogram) Bump(opcode string) {
	if h.counts == nil {
		h.counts = make(map[string]int)
	}
	if _, ok := h.counts[opcode]; !ok {
		h.order = append(h.order, opcode)
	}
	h.counts[opcode]++
}

// Count returns the current count for opcode.
func (h *Histogram) Count(opcode string) int {
	return h.counts[opcode]
}

// Entry is one histogram row in first-seen order.
type Entry struct {
	Opcode string
	Count  int
}

// Entries returns the histogram in first-seen insertion order.
func (h *Histogram) Entries() []Entry {
	out := make([]Entry, 0, len(h.order))
	for _, op := range h.order {
		out = append(out, Entry{Opcode: op, Count: h.counts[op]})
	}
	return out
}

// Reset empties the histogram.
func (h *Histogram) Reset() {
	h.counts = make(map[string]int)
	h.order = nil
}

// Total returns the sum of all opcode counts.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.counts {
		total += c
	}
	return total
}
