/*
 * otbnsim - Typed error kinds for the core machine state and step engine.
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

// Package otbnerr defines the error kinds raised across the core: callers
// use errors.As to recover a *Error and inspect its Kind, and errors.Is to
// test CallStackUnderrun against the generic OverflowError kind it refines.
package otbnerr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error. The zero Kind is never produced by this package.
type Kind int

const (
	// IndexError: WDR/limb/DMEM/IMEM/PC out of range; bad half-word/qw index.
	IndexError Kind = iota + 1
	// ValueError: unknown CSR/WSR/flag name, unresolved symbolic breakpoint, label not found.
	ValueError
	// OverflowError: value exceeds its declared width; stack overflow; generic stack underflow.
	OverflowError
	// CallStackUnderrun: pop on an empty CallStack. Refines OverflowError.
	CallStackUnderrun
	// RuntimeError: loop-stack inspection on an empty stack; invalid runtime jump target.
	RuntimeError
	// TypeError: non-integer/non-string register selector.
	TypeError
)

func (k Kind) String() string {
	switch k {
	case IndexError:
		return "IndexError"
	case ValueError:
		return "ValueError"
	case OverflowError:
		return "OverflowError"
	case CallStackUnderrun:
		return "CallStackUnderrun"
	case RuntimeError:
		return "RuntimeError"
	case TypeError:
		return "TypeError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error type raised by every package in this module.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is the same Kind, and additionally lets
// errors.Is(err, OverflowError sentinel) match a CallStackUnderrun, since a
// CallStackUnderrun is, architecturally, a stack-underflow variant of
// OverflowError (spec: "a subtype of overflow-class errors").
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	if e.Kind == other.Kind {
		return true
	}
	return e.Kind == CallStackUnderrun && other.Kind == OverflowError
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, a ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// Sentinel values usable with errors.Is to test a Kind without a message.
var (
	ErrIndex             = &Error{Kind: IndexError, Msg: "index"}
	ErrValue             = &Error{Kind: ValueError, Msg: "value"}
	ErrOverflow          = &Error{Kind: OverflowError, Msg: "overflow"}
	ErrCallStackUnderrun = &Error{Kind: CallStackUnderrun, Msg: "call stack underrun"}
	ErrRuntime           = &Error{Kind: RuntimeError, Msg: "runtime"}
	ErrType              = &Error{Kind: TypeError, Msg: "type"}
)
