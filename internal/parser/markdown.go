package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one markdown heading of a todo document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"` // 1-indexed
}

// Outline returns every heading of raw in document order.
func Outline(raw string) []Heading {
	source := []byte(raw)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	lineStarts := computeLineStarts(raw)

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		segment := heading.Lines().At(0)
		headingText := strings.TrimSpace(string(segment.Value(source)))
		if headingText == "" {
			return ast.WalkSkipChildren, nil
		}

		headings = append(headings, Heading{
			Level: heading.Level,
			Text:  headingText,
			Line:  offsetToLine(lineStarts, segment.Start) + 1,
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// Sections lists the subsections of the task block in document order with
// their own counts. Names are taken from the source line, so a heading
// written "### Weekend ###" is the section "Weekend ###", the same name
// --section matches. A name that appears twice is reported once, with the
// counts of its first occurrence.
func (l *TodoList) Sections() []Section {
	var sections []Section
	seen := make(map[string]bool)
	inBlock, blockSeen := false, false
	lines := scanLines(l.Raw)

	for _, h := range Outline(l.Raw) {
		if h.Line < 1 || h.Line > len(lines) {
			continue
		}
		line := lines[h.Line-1].text

		switch {
		case h.Level <= taskBlockDepth:
			inBlock = line == "## "+TaskBlockHeading && !blockSeen
			if inBlock {
				blockSeen = true
			}
		case h.Level == sectionDepth && inBlock:
			name, ok := strings.CutPrefix(line, "### ")
			if !ok || seen[name] {
				continue
			}
			seen[name] = true
			if section, ok := l.Section(name); ok {
				sections = append(sections, section)
			}
		}
	}
	return sections
}

func computeLineStarts(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' && i+1 < len(content) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func offsetToLine(lineStarts []int, offset int) int {
	for i := len(lineStarts) - 1; i >= 0; i-- {
		if lineStarts[i] <= offset {
			return i
		}
	}
	return 0
}
