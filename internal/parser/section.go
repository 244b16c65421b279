package parser

import "strings"

const (
	// TaskBlockHeading is the level-2 heading that opens the task block.
	TaskBlockHeading = "Todo list"

	taskBlockDepth = 2
	sectionDepth   = 3
)

// rawLine is one line of a document with its byte offsets. text has any
// trailing carriage return removed; next is the offset of the following line.
type rawLine struct {
	text  string
	start int
	next  int
}

func scanLines(s string) []rawLine {
	var lines []rawLine
	start := 0
	for start < len(s) {
		end := strings.IndexByte(s[start:], '\n')
		next := len(s)
		if end < 0 {
			end = len(s)
		} else {
			end += start
			next = end + 1
		}
		lines = append(lines, rawLine{
			text:  strings.TrimSuffix(s[start:end], "\r"),
			start: start,
			next:  next,
		})
		start = next
	}
	return lines
}

// HeadingDepth returns the ATX heading level of line (1-6), or 0 when the
// line is not a heading.
func HeadingDepth(line string) int {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return 0
	}
	depth := 0
	for depth < len(trimmed) && trimmed[depth] == '#' {
		depth++
	}
	if depth == 0 || depth > 6 {
		return 0
	}
	if depth < len(trimmed) && trimmed[depth] != ' ' && trimmed[depth] != '\t' {
		return 0
	}
	return depth
}

// ExtractBlock returns the text between the first heading line that reads
// exactly "<depth #s> <heading>" and the next heading of the same or a
// shallower depth (or the end of doc). Matching is case-sensitive and exact.
// When several headings share the name only the first is used.
func ExtractBlock(doc, heading string, depth int) (string, bool) {
	want := strings.Repeat("#", depth) + " " + heading
	lines := scanLines(doc)

	var fence fenceTracker
	for i, ln := range lines {
		if fence.skip(ln.text) || ln.text != want {
			continue
		}

		end := len(doc)
		var inner fenceTracker
		for _, next := range lines[i+1:] {
			if inner.skip(next.text) {
				continue
			}
			if d := HeadingDepth(next.text); d > 0 && d <= depth {
				end = next.start
				break
			}
		}

		block := doc[ln.next:end]
		if end < len(doc) {
			block = strings.TrimSuffix(block, "\n")
			block = strings.TrimSuffix(block, "\r")
		}
		return block, true
	}
	return "", false
}

// TaskBlock returns the body of the "## Todo list" section.
func TaskBlock(doc string) (string, bool) {
	return ExtractBlock(doc, TaskBlockHeading, taskBlockDepth)
}

// SectionBlock returns the body of the "### <name>" subsection of the task
// block.
func SectionBlock(doc, name string) (string, bool) {
	block, ok := TaskBlock(doc)
	if !ok {
		return "", false
	}
	return ExtractBlock(block, name, sectionDepth)
}
