package parser

import "strings"

const (
	openMarker = "* [ ] "
	doneMarker = "* [x] "
)

// TaskLine is a single recognised checklist line.
type TaskLine struct {
	Done    bool
	Summary string
}

// MatchTaskLine recognises "* [ ] text" and "* [x] text". The bracket must
// hold exactly a lowercase x or a single space, and the text must not be
// empty. A trailing carriage return is ignored.
func MatchTaskLine(line string) (TaskLine, bool) {
	line = strings.TrimSuffix(line, "\r")
	if len(line) <= len(openMarker) {
		return TaskLine{}, false
	}
	switch line[:len(openMarker)] {
	case openMarker:
		return TaskLine{Done: false, Summary: line[len(openMarker):]}, true
	case doneMarker:
		return TaskLine{Done: true, Summary: line[len(doneMarker):]}, true
	}
	return TaskLine{}, false
}

// IsTaskLine reports whether line opens a task.
func IsTaskLine(line string) bool {
	_, ok := MatchTaskLine(line)
	return ok
}

// CountTasks tallies done and total tasks in a span of text. Lines inside
// fenced code blocks are not counted.
func CountTasks(span string) (done, total int) {
	var fence fenceTracker
	for _, ln := range scanLines(span) {
		if fence.skip(ln.text) {
			continue
		}
		task, ok := MatchTaskLine(ln.text)
		if !ok {
			continue
		}
		total++
		if task.Done {
			done++
		}
	}
	return done, total
}

// Task is one checklist entry: the marker line plus any continuation lines
// up to the next marker, the next heading, or the end of the span.
type Task struct {
	Done bool
	// Line is the marker line, right-trimmed.
	Line string
	// Text is the marker line followed by its continuation lines, with
	// trailing whitespace of the whole task removed.
	Text string
}

// ScanTasks walks span top to bottom and returns its tasks in document
// order. Markers and headings inside fenced code blocks are treated as
// continuation text.
func ScanTasks(span string) []Task {
	var (
		tasks   []Task
		current *Task
		body    []string
		fence   fenceTracker
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.TrimRight(strings.Join(body, "\n"), " \t\r\n")
		tasks = append(tasks, *current)
		current, body = nil, nil
	}

	for _, ln := range scanLines(span) {
		if fence.skip(ln.text) {
			if current != nil {
				body = append(body, ln.text)
			}
			continue
		}
		if task, ok := MatchTaskLine(ln.text); ok {
			flush()
			current = &Task{Done: task.Done, Line: strings.TrimRight(ln.text, " \t")}
			body = []string{ln.text}
			continue
		}
		if HeadingDepth(ln.text) > 0 {
			flush()
			continue
		}
		if current != nil {
			body = append(body, ln.text)
		}
	}
	flush()
	return tasks
}
