// Package query selects tasks out of a todo document and filters parsed
// lists for the list command.
package query

import (
	"errors"

	"github.com/mdtodo/todo/internal/parser"
)

// ErrNoFilterSelected is returned when neither completed nor open tasks are
// requested.
var ErrNoFilterSelected = errors.New("select completed tasks, open tasks, or both")

// TaskOptions selects which tasks Tasks returns and how.
type TaskOptions struct {
	Completed bool
	Open      bool
	// Short keeps only the marker line of each task.
	Short bool
	// Section restricts the search to one "### <name>" subsection of the
	// task block.
	Section string
}

// Tasks returns the tasks of raw that match opts, in document order. A
// document without a task block, or without the requested section, yields
// an empty result and no error.
func Tasks(raw string, opts TaskOptions) ([]string, error) {
	if !opts.Completed && !opts.Open {
		return nil, ErrNoFilterSelected
	}

	span, ok := parser.TaskBlock(raw)
	if opts.Section != "" {
		span, ok = parser.SectionBlock(raw, opts.Section)
	}
	if !ok {
		return []string{}, nil
	}

	tasks := []string{}
	for _, task := range parser.ScanTasks(span) {
		if task.Done && !opts.Completed || !task.Done && !opts.Open {
			continue
		}
		if opts.Short {
			tasks = append(tasks, task.Line)
		} else {
			tasks = append(tasks, task.Text)
		}
	}
	return tasks, nil
}
