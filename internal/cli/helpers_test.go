package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mdtodo/todo/internal/testutil"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	outputCh := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		outputCh <- buf.String()
	}()

	defer func() {
		os.Stdout = orig
	}()
	fn()

	os.Stdout = orig
	_ = w.Close()
	return <-outputCh
}

// useWorkspace points the CLI globals at a built workspace and restores
// them when the test ends.
func useWorkspace(t *testing.T, ws *testutil.Workspace, asJSON bool) {
	t.Helper()

	prevConfigPath := configPath
	prevResolved := resolvedConfigPath
	prevCfg := cfg
	prevJSON := jsonOutput
	t.Cleanup(func() {
		configPath = prevConfigPath
		resolvedConfigPath = prevResolved
		cfg = prevCfg
		jsonOutput = prevJSON
	})

	configPath = ws.ConfigPath
	jsonOutput = asJSON
	if err := loadGlobalConfig(); err != nil {
		t.Fatalf("loadGlobalConfig: %v", err)
	}
}

type testResponse struct {
	OK       bool            `json:"ok"`
	Data     json.RawMessage `json:"data"`
	Error    *ErrorInfo      `json:"error"`
	Warnings []Warning       `json:"warnings"`
	Meta     *Meta           `json:"meta"`
}

// runJSON runs cmd in JSON mode and decodes the envelope. The command error
// is returned alongside so tests can check both.
func runJSON(t *testing.T, cmd *cobra.Command, args ...string) (testResponse, error) {
	t.Helper()

	var runErr error
	out := captureStdout(t, func() {
		runErr = cmd.RunE(cmd, args)
	})

	var resp testResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	return resp, runErr
}

func decodeData(t *testing.T, resp testResponse, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, v); err != nil {
		t.Fatalf("decode data: %v; data=%s", err, resp.Data)
	}
}

func requireErrorCode(t *testing.T, resp testResponse, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error with code %s", code)
	}
	if resp.OK || resp.Error == nil {
		t.Fatalf("expected ok=false with an error, got %+v", resp)
	}
	if resp.Error.Code != code {
		t.Fatalf("error code = %s, want %s (message: %s)", resp.Error.Code, code, resp.Error.Message)
	}
}

const (
	openList = `# Groceries

## Description

LABEL=home,food

## Todo list

* [x] milk
* [ ] eggs
  free range

### Weekend

* [ ] wine
* [x] cheese
`

	doneList = `# Taxes

## Description

LABEL=admin

## Todo list

* [x] file return
`

	brokenList = `# Broken

## Description

no label marker here
`
)
