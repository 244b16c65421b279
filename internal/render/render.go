// Package render turns parsed todo lists back into text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mdtodo/todo/internal/parser"
)

// Full writes the document exactly as it was read.
func Full(w io.Writer, list *parser.TodoList) error {
	_, err := io.WriteString(w, list.Raw)
	return err
}

// Short returns the one-line summary "<done>/<total>\t- <title>". When
// section is not empty the counts are those of the section and its name is
// appended. The second return value is false when the section is missing.
func Short(list *parser.TodoList, section string) (string, bool) {
	if section == "" {
		return fmt.Sprintf("%d/%d\t- %s", list.Done, list.Total, list.Title), true
	}
	s, ok := list.Section(section)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%d/%d\t- %s (%s)", s.Done, s.Total, list.Title, s.Name), true
}

// NewDocument describes a todo list that does not exist yet.
type NewDocument struct {
	Title       string
	Description string
	Labels      []string
	Items       []string
	Motives     []string
}

// String renders the document in the canonical layout.
func (d NewDocument) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n## Description\n\nLABEL=%s\n", d.Title, strings.Join(d.Labels, ","))
	if d.Description != "" {
		b.WriteString(d.Description)
		b.WriteString("\n")
	}

	if len(d.Items) > 0 {
		b.WriteString("\n## ")
		b.WriteString(parser.TaskBlockHeading)
		b.WriteString("\n\n")
		for _, item := range d.Items {
			fmt.Fprintf(&b, "* [ ] %s\n", item)
		}
	}

	if len(d.Motives) > 0 {
		b.WriteString("\n## Motives\n\n")
		for i, motive := range d.Motives {
			fmt.Fprintf(&b, "%d. %s\n", i+1, motive)
		}
	}

	return b.String()
}
