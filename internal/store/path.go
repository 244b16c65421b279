// Package store keeps todo lists as flat markdown files inside context
// folders.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goslug "github.com/gosimple/slug"
)

// Extension is the file extension of newly created todo lists.
const Extension = ".md"

var (
	// ErrNotFound means a todo list or folder does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExists means the destination of a write or move is already taken.
	ErrExists = errors.New("already exists")
)

// Slug converts a title into a filename stem.
func Slug(title string) string {
	title = strings.TrimSuffix(strings.TrimSpace(title), Extension)
	slugged := goslug.Make(title)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	}
	return slugged
}

// TodoPath returns where the todo list called title lives in folder.
func TodoPath(folder, title string) string {
	return filepath.Join(folder, Slug(title)+Extension)
}

// FindDocument locates an existing todo list by title. A file named exactly
// "<title>.md" wins over the slugged name so hand-made files stay reachable.
func FindDocument(folder, title string) (string, error) {
	var candidates []string
	if title != "" && !strings.ContainsAny(title, `/\`) {
		name := title
		if !strings.HasSuffix(name, Extension) {
			name += Extension
		}
		candidates = append(candidates, filepath.Join(folder, name))
	}
	candidates = append(candidates, TodoPath(folder, title))

	for _, candidate := range candidates {
		if isFile(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("todo list %q: %w at %s", title, ErrNotFound, TodoPath(folder, title))
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
