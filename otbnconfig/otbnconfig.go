/*
 * otbnsim - init-option line parser.
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

// Package otbnconfig parses the line-oriented init-option format used to
// seed a Core at construction time (breakpoints, trace channels, log level)
// without wiring a flags-style CLI into the library.
//
// Format, one directive per line:
//
//	# comment, rest of line ignored
//	breakpoint <addr> [passes]
//	trace <fetch|dispatch|stack|flags> ...
//	loglevel <debug|info|warn|error>
package otbnconfig

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/silicon-sim/otbnsim/otbnerr"
)

// Directive is one parsed, typed configuration line.
type Directive struct {
	Kind     string // "breakpoint", "trace", "loglevel"
	Addr     uint32
	Passes   int
	Channels []string
	Level    string
}

// Parse reads init-option lines from r, returning one Directive per
// non-blank, non-comment line, in file order.
func Parse(r io.Reader) ([]Directive, error) {
	var out []Directive
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d, err := parseLine(line)
		if err != nil {
			return nil, otbnerr.New(otbnerr.ValueError, "line %d: %v", lineNo, err)
		}
		out = append(out, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, otbnerr.New(otbnerr.RuntimeError, "reading config: %v", err)
	}
	return out, nil
}

func parseLine(line string) (Directive, error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "breakpoint":
		if len(fields) < 2 {
			return Directive{}, fmt.Errorf("breakpoint requires an address")
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 32)
		if err != nil {
			return Directive{}, fmt.Errorf("bad breakpoint address %q: %w", fields[1], err)
		}
		passes := 1
		if len(fields) >= 3 {
			p, err := strconv.Atoi(fields[2])
			if err != nil {
				return Directive{}, fmt.Errorf("bad pass count %q: %w", fields[2], err)
			}
			passes = p
		}
		return Directive{Kind: "breakpoint", Addr: uint32(addr), Passes: passes}, nil
	case "trace":
		if len(fields) < 2 {
			return Directive{}, fmt.Errorf("trace requires at least one channel")
		}
		return Directive{Kind: "trace", Channels: fields[1:]}, nil
	case "loglevel":
		if len(fields) < 2 {
			return Directive{}, fmt.Errorf("loglevel requires a level")
		}
		return Directive{Kind: "loglevel", Level: strings.ToLower(fields[1])}, nil
	default:
		return Directive{}, fmt.Errorf("unknown directive %q", fields[0])
	}
}
