package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mdtodo/todo/internal/config"
	"github.com/mdtodo/todo/internal/logging"
	"github.com/mdtodo/todo/internal/parser"
	"github.com/mdtodo/todo/internal/store"
)

// loadedList is a parsed todo list with where it came from.
type loadedList struct {
	Context config.Context
	Path    string
	List    *parser.TodoList
}

// resolveContext returns the named context, or the active one when name is
// empty.
func resolveContext(name string) (config.Context, error) {
	c := getConfig()
	if strings.TrimSpace(name) == "" {
		return c.Active()
	}
	return c.Context(name)
}

// loadList finds, reads and parses the list called title in ctx.
func loadList(ctx config.Context, title string) (*loadedList, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	path, err := store.FindDocument(ctx.FolderLocation, title)
	if err != nil {
		return nil, err
	}
	logging.L().Debug("reading todo list", "context", ctx.Name, "path", path)

	raw, err := store.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	list, err := parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &loadedList{Context: ctx, Path: path, List: list}, nil
}

// loadListFromArgs resolves the active context and loads the list named by
// the first argument, reporting failures through handleError.
func loadListFromArgs(args []string) (*loadedList, error) {
	ctx, err := resolveContext("")
	if err != nil {
		return nil, fail(err, ErrContextNotFound)
	}
	loaded, err := loadList(ctx, args[0])
	if err != nil {
		return nil, fail(err, ErrFileReadError)
	}
	return loaded, nil
}

// displayPath shortens path relative to the context folder when possible.
func displayPath(ctx config.Context, path string) string {
	if rel, err := filepath.Rel(ctx.FolderLocation, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.Join(ctx.Name, rel)
	}
	return path
}
