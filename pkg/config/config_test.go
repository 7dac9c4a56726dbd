package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Thresholds.CyclomaticComplexity != 10 {
		t.Errorf("Thresholds.CyclomaticComplexity = %f, want 10", cfg.Thresholds.CyclomaticComplexity)
	}
	if cfg.Thresholds.CognitiveComplexity != 15 {
		t.Errorf("Thresholds.CognitiveComplexity = %f, want 15", cfg.Thresholds.CognitiveComplexity)
	}

	if !cfg.Exclude.Gitignore {
		t.Error("Exclude.Gitignore should be true by default")
	}
	if len(cfg.Exclude.Dirs) == 0 {
		t.Error("Exclude.Dirs should have default values")
	}

	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be true by default")
	}
	if cfg.Cache.TTL != 24 {
		t.Errorf("Cache.TTL = %d, want 24", cfg.Cache.TTL)
	}

	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %s, want text", cfg.Output.Format)
	}
	if len(cfg.Analysis.Languages) != 0 {
		t.Error("Analysis.Languages should default to empty (all languages)")
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strata.toml")
	content := `
[analysis]
languages = ["go", "python"]
workers = 4

[thresholds]
cyclomatic_complexity = 12

[output]
format = "json"
color = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Analysis.Languages) != 2 {
		t.Errorf("Analysis.Languages = %v, want 2 entries", cfg.Analysis.Languages)
	}
	if cfg.Analysis.Workers != 4 {
		t.Errorf("Analysis.Workers = %d, want 4", cfg.Analysis.Workers)
	}
	if cfg.Thresholds.CyclomaticComplexity != 12 {
		t.Errorf("Thresholds.CyclomaticComplexity = %f, want 12", cfg.Thresholds.CyclomaticComplexity)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Error("Output.Color should be false")
	}
	// Unset sections keep their defaults.
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should keep its default")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strata.yaml")
	content := "output:\n  format: markdown\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Output.Format = %s, want markdown", cfg.Output.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/strata.toml"); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestShouldExclude(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		path string
		want bool
	}{
		{"src/main.go", false},
		{"vendor/lib/dep.go", true},
		{"node_modules/pkg/index.js", true},
		{"app/assets/site.min.js", true},
		{"go.sum", true},
		{"lib/util.py", false},
	}
	for _, tt := range tests {
		if got := cfg.ShouldExclude(tt.path); got != tt.want {
			t.Errorf("ShouldExclude(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWantsLanguage(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.WantsLanguage("go") {
		t.Error("empty filter should admit every language")
	}

	cfg.Analysis.Languages = []string{"go", "rust"}
	if !cfg.WantsLanguage("Go") {
		t.Error("filter match should be case-insensitive")
	}
	if cfg.WantsLanguage("python") {
		t.Error("python is not in the filter")
	}
}
