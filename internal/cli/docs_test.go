package cli

import (
	"testing"

	"github.com/mdtodo/todo/docs"
)

func TestDocsRaw(t *testing.T) {
	prevRaw, prevJSON := docsRaw, jsonOutput
	t.Cleanup(func() { docsRaw, jsonOutput = prevRaw, prevJSON })
	docsRaw = true
	jsonOutput = false

	out := captureStdout(t, func() {
		if err := docsCmd.RunE(docsCmd, nil); err != nil {
			t.Fatalf("docs returned error: %v", err)
		}
	})
	if out == "" || out != docs.Format {
		t.Fatalf("expected the embedded reference, got %q", out)
	}
}

func TestDocsJSON(t *testing.T) {
	prev := jsonOutput
	t.Cleanup(func() { jsonOutput = prev })
	jsonOutput = true

	resp, err := runJSON(t, docsCmd)
	if err != nil {
		t.Fatalf("docs returned error: %v", err)
	}
	var data map[string]string
	decodeData(t, resp, &data)
	if data["format"] != docs.Format {
		t.Fatal("format mismatch")
	}
}
