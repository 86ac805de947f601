/*
 * otbnsim - masked execution tracing.
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

// Package otbntrace gates per-instruction trace text behind a bitmask, the
// same mask-and-level scheme the rest of the corpus uses for device debug
// logging, rather than slog's ordered level scheme: trace channels are
// independent concerns (fetch, dispatch, stack), not a severity ladder.
package otbntrace

import (
	"fmt"
	"io"
)

// Channel bits select which categories of trace text get written.
const (
	Fetch Channel = 1 << iota
	Dispatch
	Stack
	Flags
)

// Channel is a bitmask of trace categories.
type Channel int

// Tracer writes masked trace lines to an underlying sink. A nil *Tracer is
// valid and discards everything, so callers can wire it unconditionally.
type Tracer struct {
	out  io.Writer
	mask Channel
}

// New returns a Tracer writing lines enabled by mask to out.
func New(out io.Writer, mask Channel) *Tracer {
	return &Tracer{out: out, mask: mask}
}

// Tracef writes a trace line for channel ch if it is enabled by the mask.
func (t *Tracer) Tracef(ch Channel, format string, a ...any) {
	if t == nil || t.out == nil || t.mask&ch == 0 {
		return
	}
	fmt.Fprintf(t.out, format+"\n", a...)
}

// Enabled reports whether channel ch is currently traced.
func (t *Tracer) Enabled(ch Channel) bool {
	return t != nil && t.mask&ch != 0
}

// SetMask replaces the enabled channel mask.
func (t *Tracer) SetMask(mask Channel) {
	if t == nil {
		return
	}
	t.mask = mask
}
