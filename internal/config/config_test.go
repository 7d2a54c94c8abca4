package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, DefaultPrompt)
	}
	if cfg.HistoryFile != DefaultHistoryFile {
		t.Errorf("HistoryFile = %q, want %q", cfg.HistoryFile, DefaultHistoryFile)
	}
	if cfg.Color != nil {
		t.Error("Color should be unset by default")
	}
	if cfg.DumpAST {
		t.Error("DumpAST should be off by default")
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte("prompt: \"λ> \"\ncolor: false\ndump_ast: true\n")
	cfg, err := ParseConfig(data, "haski.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "λ> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "λ> ")
	}
	if cfg.Color == nil || *cfg.Color {
		t.Errorf("Color = %v, want false", cfg.Color)
	}
	if !cfg.DumpAST {
		t.Error("DumpAST should be true")
	}
	// Unset fields keep their defaults.
	if cfg.HistoryFile != DefaultHistoryFile {
		t.Errorf("HistoryFile = %q, want default %q", cfg.HistoryFile, DefaultHistoryFile)
	}
}

func TestParseConfigRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("prompt: [unclosed"), "haski.yaml"); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(path, []byte("prompt: \"> \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != path {
		t.Errorf("FindConfig = %q, want %q", found, path)
	}
}

func TestLoadWithoutConfigUsesDefaults(t *testing.T) {
	// A fresh temp dir has no haski.yaml anywhere up the tree, except
	// possibly in system temp ancestors; guard by checking FindConfig.
	dir := t.TempDir()
	found, err := FindConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if found != "" {
		t.Skipf("unexpected config on the search path: %s", found)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("Prompt = %q, want default", cfg.Prompt)
	}
}

func TestLoadReadsNearestConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("prompt: \"inner> \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "inner> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "inner> ")
	}
}
