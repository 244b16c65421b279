// Package parser reads the todo-list markdown dialect: a "# Title" line, a
// LABEL= marker, and a "## Todo list" block of checklist items optionally
// split into "### Section" subsections.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

const labelMarker = "LABEL="

var (
	// ErrMissingTitle means the first line is not "# <title>".
	ErrMissingTitle = errors.New("todo list does not have a title")

	// ErrMalformedLabels means the document has no LABEL= marker line.
	ErrMalformedLabels = errors.New("todo list has no LABEL= marker")
)

// ParseError describes why a document could not be parsed. It unwraps to
// ErrMissingTitle or ErrMalformedLabels.
type ParseError struct {
	Kind   error
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// TodoList is the parsed, read-only view of one todo document.
type TodoList struct {
	Raw    string
	Title  string
	Labels []string
	Done   int
	Total  int
}

// Section holds the task counts of one "### <name>" subsection.
type Section struct {
	Name  string `json:"name"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}

// AllDone reports whether every task is checked. A list without tasks is
// vacuously done.
func (l *TodoList) AllDone() bool {
	return l.Done == l.Total
}

// AllDone reports whether every task of the section is checked.
func (s Section) AllDone() bool {
	return s.Done == s.Total
}

// HasLabel reports whether the list carries label.
func (l *TodoList) HasLabel(label string) bool {
	for _, have := range l.Labels {
		if have == label {
			return true
		}
	}
	return false
}

// Section returns the counts of the named subsection of the task block.
func (l *TodoList) Section(name string) (Section, bool) {
	block, ok := SectionBlock(l.Raw, name)
	if !ok {
		return Section{}, false
	}
	done, total := CountTasks(block)
	return Section{Name: name, Done: done, Total: total}, true
}

// Parse builds a TodoList from raw document text. A missing title or a
// missing LABEL= marker is fatal; a missing task block is not and yields 0/0.
func Parse(raw string) (*TodoList, error) {
	lines := scanLines(raw)

	title, ok := parseTitle(lines)
	if !ok {
		return nil, &ParseError{Kind: ErrMissingTitle}
	}

	labels, ok := parseLabels(lines)
	if !ok {
		return nil, &ParseError{Kind: ErrMalformedLabels, Detail: fmt.Sprintf("%q", title)}
	}

	list := &TodoList{
		Raw:    raw,
		Title:  title,
		Labels: labels,
	}
	if block, ok := TaskBlock(raw); ok {
		list.Done, list.Total = CountTasks(block)
	}
	return list, nil
}

func parseTitle(lines []rawLine) (string, bool) {
	if len(lines) == 0 {
		return "", false
	}
	first := lines[0].text
	if !strings.HasPrefix(first, "# ") {
		return "", false
	}
	title := strings.TrimSpace(first[2:])
	return title, title != ""
}

func parseLabels(lines []rawLine) ([]string, bool) {
	var fence fenceTracker
	for _, ln := range lines {
		if fence.skip(ln.text) {
			continue
		}
		if !strings.HasPrefix(ln.text, labelMarker) {
			continue
		}
		return SplitLabels(ln.text[len(labelMarker):]), true
	}
	return nil, false
}

// SplitLabels splits a comma-separated label list, trimming blanks and
// dropping empty and repeated entries while keeping first-seen order.
func SplitLabels(value string) []string {
	labels := []string{}
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		label := strings.TrimSpace(part)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}
