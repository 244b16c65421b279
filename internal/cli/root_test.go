package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestInvalidConfigIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("active_ctx_name = \"work\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	prevConfigPath, prevResolved, prevCfg, prevJSON := configPath, resolvedConfigPath, cfg, jsonOutput
	t.Cleanup(func() {
		configPath, resolvedConfigPath, cfg, jsonOutput = prevConfigPath, prevResolved, prevCfg, prevJSON
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"--json", "--config", path, "config", "active-context"})
	var runErr error
	out := captureStdout(t, func() {
		runErr = Execute()
	})
	if runErr == nil {
		t.Fatal("expected an error for a config naming an unknown active context")
	}

	var resp testResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got %q", out)
	}
	if resp.OK || resp.Error == nil || resp.Error.Code != ErrConfigInvalid {
		t.Fatalf("response = %+v", resp)
	}
}
