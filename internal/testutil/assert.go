package testutil

import (
	"os"
	"strings"
)

// ReadFile returns the content of a file in a context folder.
func (w *Workspace) ReadFile(ctxName, relPath string) string {
	w.t.Helper()
	content, err := os.ReadFile(w.Path(ctxName, relPath))
	if err != nil {
		w.t.Fatalf("failed to read %s/%s: %v", ctxName, relPath, err)
	}
	return string(content)
}

// AssertFileExists fails the test if the file does not exist.
func (w *Workspace) AssertFileExists(ctxName, relPath string) {
	w.t.Helper()
	if _, err := os.Stat(w.Path(ctxName, relPath)); os.IsNotExist(err) {
		w.t.Errorf("expected file to exist: %s/%s", ctxName, relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (w *Workspace) AssertFileNotExists(ctxName, relPath string) {
	w.t.Helper()
	if _, err := os.Stat(w.Path(ctxName, relPath)); err == nil {
		w.t.Errorf("expected file to not exist: %s/%s", ctxName, relPath)
	}
}

// AssertFileContains fails the test if the file does not contain substr.
func (w *Workspace) AssertFileContains(ctxName, relPath, substr string) {
	w.t.Helper()
	content := w.ReadFile(ctxName, relPath)
	if !strings.Contains(content, substr) {
		w.t.Errorf("expected %s/%s to contain %q, got:\n%s", ctxName, relPath, substr, content)
	}
}
