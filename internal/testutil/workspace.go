// Package testutil builds throwaway contexts and configuration files for
// tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mdtodo/todo/internal/config"
)

// Workspace is a temporary set of context folders plus the config file that
// points at them.
type Workspace struct {
	Root       string
	ConfigPath string

	t        *testing.T
	cfg      config.Config
	files    map[string]map[string]string
	noFolder map[string]bool
}

// NewWorkspace creates a workspace builder rooted in a fresh temp dir.
// Call Build() to write it to disk.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	root := t.TempDir()
	return &Workspace{
		Root:       root,
		ConfigPath: filepath.Join(root, "config.toml"),
		t:          t,
		files:      make(map[string]map[string]string),
		noFolder:   make(map[string]bool),
	}
}

// WithContext adds a context whose folder is <root>/<name>. The first
// context added becomes active.
func (w *Workspace) WithContext(name string) *Workspace {
	w.cfg.Contexts = append(w.cfg.Contexts, config.Context{
		Name:           name,
		IDE:            "true",
		Timezone:       "UTC",
		FolderLocation: w.Folder(name),
	})
	if w.cfg.ActiveContext == "" {
		w.cfg.ActiveContext = name
	}
	return w
}

// WithActive switches the active context.
func (w *Workspace) WithActive(name string) *Workspace {
	w.cfg.ActiveContext = name
	return w
}

// WithoutFolder leaves the folder of a context uncreated.
func (w *Workspace) WithoutFolder(name string) *Workspace {
	w.noFolder[name] = true
	return w
}

// WithFile adds a file to a context folder. The path is relative to the
// folder.
func (w *Workspace) WithFile(ctxName, relPath, content string) *Workspace {
	if w.files[ctxName] == nil {
		w.files[ctxName] = make(map[string]string)
	}
	w.files[ctxName][relPath] = content
	return w
}

// Build creates the folders, files and config file.
func (w *Workspace) Build() *Workspace {
	w.t.Helper()

	for _, ctx := range w.cfg.Contexts {
		if w.noFolder[ctx.Name] {
			continue
		}
		if err := os.MkdirAll(ctx.FolderLocation, 0o755); err != nil {
			w.t.Fatalf("failed to create folder %s: %v", ctx.FolderLocation, err)
		}
	}
	for ctxName, files := range w.files {
		for rel, content := range files {
			w.writeFile(filepath.Join(w.Folder(ctxName), rel), content)
		}
	}

	if err := config.SaveTo(w.ConfigPath, &w.cfg); err != nil {
		w.t.Fatalf("failed to write config: %v", err)
	}
	return w
}

// Folder returns the folder of the named context.
func (w *Workspace) Folder(ctxName string) string {
	return filepath.Join(w.Root, ctxName)
}

// Path returns the absolute path of a file in a context folder.
func (w *Workspace) Path(ctxName, relPath string) string {
	return filepath.Join(w.Folder(ctxName), relPath)
}

// LoadConfig reads the config file back.
func (w *Workspace) LoadConfig() *config.Config {
	w.t.Helper()
	c, err := config.LoadFrom(w.ConfigPath)
	if err != nil {
		w.t.Fatalf("failed to load config: %v", err)
	}
	return c
}

func (w *Workspace) writeFile(fullPath, content string) {
	w.t.Helper()
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		w.t.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		w.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}
