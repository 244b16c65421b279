package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := &Config{
		ActiveContext: "work",
		Contexts: []Context{
			{Name: "work", IDE: "code", Timezone: "Europe/Paris", FolderLocation: "/tmp/work"},
			{Name: "home", IDE: "vim", FolderLocation: "/tmp/home"},
		},
	}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{`active_ctx_name = "work"`, "[[ctxs]]", `folder_location = "/tmp/work"`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("saved config missing %q:\n%s", want, raw)
		}
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if loaded.ActiveContext != "work" || len(loaded.Contexts) != 2 {
		t.Fatalf("loaded = %+v", loaded)
	}
	if loaded.Contexts[1] != cfg.Contexts[1] {
		t.Errorf("context = %+v, want %+v", loaded.Contexts[1], cfg.Contexts[1])
	}
}

func TestSaveToRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := &Config{ActiveContext: "ghost"}

	if err := SaveTo(path, cfg); err == nil {
		t.Fatal("expected error for unknown active context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written, stat err = %v", err)
	}
}
