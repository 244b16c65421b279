package cli

import (
	"errors"
	"testing"

	"github.com/mdtodo/todo/internal/testutil"
)

func TestMoveCommand(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithContext("work").
		WithContext("home").
		WithFile("work", "groceries.md", openList).
		Build()
	useWorkspace(t, ws, true)
	moveYes = false
	t.Cleanup(func() { moveYes = false })

	resp, err := runJSON(t, moveCmd, "Groceries", "home")
	if err != nil {
		t.Fatalf("move returned error: %v", err)
	}
	var result moveResult
	decodeData(t, resp, &result)
	if result.FromContext != "work" || result.ToContext != "home" {
		t.Fatalf("result = %+v", result)
	}
	if result.To != ws.Path("home", "groceries.md") {
		t.Fatalf("to = %s", result.To)
	}

	ws.AssertFileNotExists("work", "groceries.md")
	ws.AssertFileContains("home", "groceries.md", "* [ ] eggs")
}

func TestMoveErrors(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithContext("work").
		WithContext("home").
		WithFile("work", "groceries.md", openList).
		Build()
	useWorkspace(t, ws, true)
	moveYes = false
	t.Cleanup(func() { moveYes = false })

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"unknown context", []string{"Groceries", "garage"}, ErrContextNotFound},
		{"same context", []string{"Groceries", "work"}, ErrInvalidInput},
		{"unknown list", []string{"Hardware", "home"}, ErrFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := runJSON(t, moveCmd, tt.args...)
			requireErrorCode(t, resp, err, tt.code)
			var reported *reportedError
			if !errors.As(err, &reported) {
				t.Fatalf("expected a reported error, got %T", err)
			}
		})
	}
	ws.AssertFileExists("work", "groceries.md")
}

func TestMoveUnknownContextListsAvailable(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithContext("work").
		WithContext("home").
		WithFile("work", "groceries.md", openList).
		Build()
	useWorkspace(t, ws, true)

	resp, err := runJSON(t, moveCmd, "Groceries", "garage")
	requireErrorCode(t, resp, err, ErrContextNotFound)

	details, ok := resp.Error.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("details = %#v", resp.Error.Details)
	}
	available, ok := details["available"].([]interface{})
	if !ok || len(available) != 2 || available[0] != "work" || available[1] != "home" {
		t.Fatalf("available = %#v", details["available"])
	}
}

func TestMoveIntoMissingFolder(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithContext("work").
		WithContext("home").
		WithoutFolder("home").
		WithFile("work", "groceries.md", openList).
		Build()
	useWorkspace(t, ws, true)
	moveYes = false
	t.Cleanup(func() { moveYes = false })

	resp, err := runJSON(t, moveCmd, "Groceries", "home")
	requireErrorCode(t, resp, err, ErrConfirmationRequired)
	ws.AssertFileExists("work", "groceries.md")

	moveYes = true
	resp, err = runJSON(t, moveCmd, "Groceries", "home")
	if err != nil || !resp.OK {
		t.Fatalf("move --yes failed: %v %+v", err, resp.Error)
	}
	ws.AssertFileExists("home", "groceries.md")
}
