package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mdtodo/todo/internal/config"
	"github.com/mdtodo/todo/internal/parser"
	"github.com/mdtodo/todo/internal/store"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unknown context", fmt.Errorf("lookup: %w", config.ErrUnknownContext), ErrContextNotFound},
		{"no active context", config.ErrNoActiveContext, ErrNoActiveContext},
		{"missing title", fmt.Errorf("a.md: %w", parser.ErrMissingTitle), ErrParseError},
		{"malformed labels", parser.ErrMalformedLabels, ErrParseError},
		{"not found", fmt.Errorf("x: %w", store.ErrNotFound), ErrFileNotFound},
		{"exists", store.ErrExists, ErrFileExists},
		{"declined", store.ErrDeclined, ErrConfirmationRequired},
		{"no editor", store.ErrNoEditor, ErrEditorFailed},
		{"anything else", errors.New("boom"), ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorCode(tt.err, ErrInternal); got != tt.want {
				t.Fatalf("errorCode = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHandleErrorTextModeAddsSuggestion(t *testing.T) {
	prev := jsonOutput
	jsonOutput = false
	t.Cleanup(func() { jsonOutput = prev })

	err := handleError(ErrFileExists, errors.New("groceries.md exists"), "Use --force to overwrite")
	if err == nil || err.Error() != "groceries.md exists\n\nUse --force to overwrite" {
		t.Fatalf("err = %v", err)
	}
	var reported *reportedError
	if errors.As(err, &reported) {
		t.Fatal("text mode errors are printed by Execute")
	}
}
