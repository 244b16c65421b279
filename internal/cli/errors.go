package cli

import (
	"errors"

	"github.com/mdtodo/todo/internal/config"
	"github.com/mdtodo/todo/internal/parser"
	"github.com/mdtodo/todo/internal/store"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Config and context errors
	ErrConfigInvalid   = "CONFIG_INVALID"
	ErrContextNotFound = "CONTEXT_NOT_FOUND"
	ErrContextExists   = "CONTEXT_EXISTS"
	ErrNoActiveContext = "NO_ACTIVE_CONTEXT"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileExists     = "FILE_EXISTS"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Document errors
	ErrParseError = "PARSE_ERROR"

	// Input errors
	ErrInvalidInput         = "INVALID_INPUT"
	ErrConfirmationRequired = "CONFIRMATION_REQUIRED"

	// Editor errors
	ErrEditorFailed = "EDITOR_FAILED"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// errorCode picks the code for err, falling back to fallback.
func errorCode(err error, fallback string) string {
	switch {
	case errors.Is(err, config.ErrUnknownContext):
		return ErrContextNotFound
	case errors.Is(err, config.ErrNoActiveContext):
		return ErrNoActiveContext
	case errors.Is(err, parser.ErrMissingTitle), errors.Is(err, parser.ErrMalformedLabels):
		return ErrParseError
	case errors.Is(err, store.ErrNotFound):
		return ErrFileNotFound
	case errors.Is(err, store.ErrExists):
		return ErrFileExists
	case errors.Is(err, store.ErrDeclined):
		return ErrConfirmationRequired
	case errors.Is(err, store.ErrNoEditor):
		return ErrEditorFailed
	default:
		return fallback
	}
}

// errorSuggestion returns a hint for the common failure kinds.
func errorSuggestion(err error) string {
	switch {
	case errors.Is(err, config.ErrNoActiveContext):
		return "Run 'todo config create-context' or 'todo config set-context <name>'"
	case errors.Is(err, config.ErrUnknownContext):
		return "Run 'todo config get-contexts' to see configured contexts"
	case errors.Is(err, parser.ErrMissingTitle):
		return "The first line must be '# <title>'"
	case errors.Is(err, parser.ErrMalformedLabels):
		return "Add a 'LABEL=' line under '## Description'"
	case errors.Is(err, store.ErrNoEditor):
		return "Set the context ide or $EDITOR"
	default:
		return ""
	}
}

// fail reports err with a code and suggestion derived from its kind.
func fail(err error, fallback string) error {
	return handleError(errorCode(err, fallback), err, errorSuggestion(err))
}
