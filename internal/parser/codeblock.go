package parser

import "strings"

// fenceTracker follows fenced code blocks (``` or ~~~) while lines are
// scanned top to bottom. Headings and task markers inside a fence are plain
// text.
type fenceTracker struct {
	open bool
	ch   byte
	n    int
}

// fenceMarker reports the fence character and run length when line opens or
// closes a fenced block. Up to three leading spaces are allowed.
func fenceMarker(line string) (byte, int, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || len(trimmed) < 3 {
		return 0, 0, false
	}
	ch := trimmed[0]
	if ch != '`' && ch != '~' {
		return 0, 0, false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == ch {
		n++
	}
	if n < 3 {
		return 0, 0, false
	}
	return ch, n, true
}

// update consumes one line and returns true when the line is itself a fence
// marker that opened or closed a block.
func (f *fenceTracker) update(line string) bool {
	ch, n, ok := fenceMarker(line)
	if !ok {
		return false
	}
	if !f.open {
		f.open, f.ch, f.n = true, ch, n
		return true
	}
	if ch == f.ch && n >= f.n {
		f.open, f.ch, f.n = false, 0, 0
		return true
	}
	return false
}

// skip reports whether line should be treated as verbatim text.
func (f *fenceTracker) skip(line string) bool {
	if f.update(line) {
		return true
	}
	return f.open
}
