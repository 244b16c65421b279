package store

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor means neither the context nor $EDITOR names an editor.
var ErrNoEditor = errors.New("no editor configured")

// runCommand executes the editor process. Tests replace it.
var runCommand = func(cmd *exec.Cmd) error {
	return cmd.Run()
}

// EditorCommand builds the command that opens path in ide, falling back to
// $EDITOR. An ide with arguments, like "open -a Cursor", runs through sh.
func EditorCommand(ide, path string) (*exec.Cmd, error) {
	editor := strings.TrimSpace(ide)
	if editor == "" {
		editor = strings.TrimSpace(os.Getenv("EDITOR"))
	}
	if editor == "" {
		return nil, ErrNoEditor
	}

	if strings.ContainsAny(editor, " \t") {
		return exec.Command("sh", "-c", editor+" "+shellQuote(path)), nil
	}
	return exec.Command(editor, path), nil
}

// OpenInEditor opens path and waits for the editor to exit. The editor is
// attached to the current terminal.
func OpenInEditor(ide, path string) error {
	cmd, err := EditorCommand(ide, path)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := runCommand(cmd); err != nil {
		return fmt.Errorf("editor %q: %w", cmd.Path, err)
	}
	return nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
