package query

import "github.com/mdtodo/todo/internal/parser"

// ListFilter decides which lists the list command shows.
type ListFilter struct {
	// Labels must all be present on a list.
	Labels []string
	// Done selects finished lists instead of unfinished ones.
	Done bool
	// All ignores Done.
	All bool
	// Section judges completion on the named subsection only. Lists
	// without it never match.
	Section string
}

// Match reports whether list passes the filter.
func (f ListFilter) Match(list *parser.TodoList) bool {
	for _, label := range f.Labels {
		if !list.HasLabel(label) {
			return false
		}
	}

	allDone := list.AllDone()
	if f.Section != "" {
		section, ok := list.Section(f.Section)
		if !ok {
			return false
		}
		allDone = section.AllDone()
	}

	return f.All || allDone == f.Done
}
