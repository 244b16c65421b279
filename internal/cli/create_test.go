package cli

import (
	"strings"
	"testing"

	"github.com/mdtodo/todo/internal/parser"
	"github.com/mdtodo/todo/internal/testutil"
)

func resetCreateFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		createLabels = nil
		createDescription = ""
		createItems = nil
		createMotives = nil
		createForce = false
		createYes = false
	}
	reset()
	t.Cleanup(reset)
}

func TestCreateWritesParseableDocument(t *testing.T) {
	ws := testutil.NewWorkspace(t).WithContext("work").Build()
	useWorkspace(t, ws, true)
	resetCreateFlags(t)
	createLabels = []string{"travel, family", "travel"}
	createDescription = "Summer plans"
	createItems = []string{"book flights", " ", "pack"}
	createMotives = []string{"rest"}

	resp, err := runJSON(t, createCmd, "Weekend Trip")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	var result createResult
	decodeData(t, resp, &result)
	wantPath := ws.Path("work", "weekend-trip.md")
	if result.Path != wantPath || result.Context != "work" || result.Items != 2 {
		t.Fatalf("result = %+v", result)
	}

	content := ws.ReadFile("work", "weekend-trip.md")
	list, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("created document does not parse: %v\n%s", err, content)
	}
	if list.Title != "Weekend Trip" {
		t.Errorf("title = %q", list.Title)
	}
	if strings.Join(list.Labels, ",") != "travel,family" {
		t.Errorf("labels = %v", list.Labels)
	}
	if list.Done != 0 || list.Total != 2 {
		t.Errorf("counts = %d/%d", list.Done, list.Total)
	}
	for _, want := range []string{"Summer plans", "* [ ] book flights", "## Motives", "1. rest"} {
		if !strings.Contains(content, want) {
			t.Errorf("document missing %q:\n%s", want, content)
		}
	}
}

func TestCreateRefusesToOverwrite(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithContext("work").
		WithFile("work", "groceries.md", openList).
		Build()
	useWorkspace(t, ws, true)
	resetCreateFlags(t)

	resp, err := runJSON(t, createCmd, "Groceries")
	requireErrorCode(t, resp, err, ErrFileExists)
	ws.AssertFileContains("work", "groceries.md", "* [ ] eggs")

	createForce = true
	resp, err = runJSON(t, createCmd, "Groceries")
	if err != nil || !resp.OK {
		t.Fatalf("create --force failed: %v %+v", err, resp.Error)
	}
	content := ws.ReadFile("work", "groceries.md")
	if strings.Contains(content, "eggs") {
		t.Fatalf("expected the list to be replaced:\n%s", content)
	}
}

func TestCreateMissingFolder(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithContext("work").
		WithoutFolder("work").
		Build()
	useWorkspace(t, ws, true)
	resetCreateFlags(t)

	resp, err := runJSON(t, createCmd, "Groceries")
	requireErrorCode(t, resp, err, ErrConfirmationRequired)
	ws.AssertFileNotExists("work", "")

	createYes = true
	resp, err = runJSON(t, createCmd, "Groceries")
	if err != nil || !resp.OK {
		t.Fatalf("create --yes failed: %v %+v", err, resp.Error)
	}
	ws.AssertFileExists("work", "groceries.md")
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	ws := testutil.NewWorkspace(t).WithContext("work").Build()
	useWorkspace(t, ws, true)
	resetCreateFlags(t)

	resp, err := runJSON(t, createCmd, "   ")
	requireErrorCode(t, resp, err, ErrInvalidInput)
}
