package cli

import (
	"testing"

	"github.com/mdtodo/todo/internal/testutil"
)

func TestDeleteRequiresForceWithoutTerminal(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithContext("work").
		WithFile("work", "groceries.md", openList).
		Build()
	useWorkspace(t, ws, true)
	deleteForce = false
	t.Cleanup(func() { deleteForce = false })

	resp, err := runJSON(t, deleteCmd, "Groceries")
	requireErrorCode(t, resp, err, ErrConfirmationRequired)
	ws.AssertFileExists("work", "groceries.md")

	deleteForce = true
	resp, err = runJSON(t, deleteCmd, "Groceries")
	if err != nil || !resp.OK {
		t.Fatalf("delete --force failed: %v %+v", err, resp.Error)
	}
	ws.AssertFileNotExists("work", "groceries.md")
}

func TestDeleteUnknownList(t *testing.T) {
	ws := testutil.NewWorkspace(t).WithContext("work").Build()
	useWorkspace(t, ws, true)
	deleteForce = true
	t.Cleanup(func() { deleteForce = false })

	resp, err := runJSON(t, deleteCmd, "Groceries")
	requireErrorCode(t, resp, err, ErrFileNotFound)
}
