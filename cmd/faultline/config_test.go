package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestFindConfigFileWalksUp(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "faultline.toml")
	if err := os.WriteFile(cfgPath, []byte("[defaults]\nlanguage = \"python\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := findConfigFile(sub)
	if !ok {
		t.Fatal("findConfigFile() did not find the config")
	}
	if got != cfgPath {
		t.Errorf("findConfigFile() = %q, want %q", got, cfgPath)
	}
}

func TestConfigDecode(t *testing.T) {
	var cfg fileConfig
	input := "[defaults]\nlanguage = \"javascript\"\ncontext_lines = 5\nmax_solutions = 2\njobs = 4\nformat = \"json\"\n"
	if err := toml.Unmarshal([]byte(input), &cfg); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if cfg.Defaults.Language != "javascript" {
		t.Errorf("Language = %q", cfg.Defaults.Language)
	}
	if cfg.Defaults.ContextLines != 5 {
		t.Errorf("ContextLines = %d", cfg.Defaults.ContextLines)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("Format = %q", cfg.Defaults.Format)
	}
}
