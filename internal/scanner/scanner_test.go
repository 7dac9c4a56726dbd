package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stratametrics/strata/pkg/config"
	"github.com/stratametrics/strata/pkg/lang"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return tmpDir
}

func TestNew(t *testing.T) {
	s := New(nil)
	if s == nil {
		t.Fatal("New(nil) returned nil")
	}
	if s.config == nil {
		t.Error("scanner.config should not be nil when passing nil")
	}

	cfg := config.DefaultConfig()
	s = New(cfg)
	if s.config != cfg {
		t.Error("scanner.config should be the provided config")
	}
}

func TestScanDir(t *testing.T) {
	tmpDir := writeTree(t, map[string]string{
		"main.go":           "package main\n",
		"util/helper.py":    "# python\n",
		"internal/core.rs":  "fn main() {}\n",
		"README.md":         "# readme\n",
		"vendor/dep/dep.go": "package dep\n",
	})

	files, err := New(nil).ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}

	found := map[string]bool{}
	for _, f := range files {
		rel, _ := filepath.Rel(tmpDir, f)
		found[rel] = true
	}

	for _, want := range []string{"main.go", filepath.Join("util", "helper.py"), filepath.Join("internal", "core.rs")} {
		if !found[want] {
			t.Errorf("ScanDir() missed %s", want)
		}
	}
	if found["README.md"] {
		t.Error("ScanDir() should skip files without a supported language")
	}
	if found[filepath.Join("vendor", "dep", "dep.go")] {
		t.Error("ScanDir() should honor the vendor exclusion")
	}
}

func TestScanDirLanguageFilter(t *testing.T) {
	tmpDir := writeTree(t, map[string]string{
		"a.go": "package a\n",
		"b.py": "x = 1\n",
	})

	cfg := config.DefaultConfig()
	cfg.Analysis.Languages = []string{"go"}

	files, err := New(cfg).ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "a.go" {
		t.Errorf("ScanDir() = %v, want only a.go", files)
	}
}

func TestScanFile(t *testing.T) {
	tmpDir := writeTree(t, map[string]string{
		"ok.go":    "package ok\n",
		"notes.md": "hi\n",
	})

	s := New(nil)
	if ok, err := s.ScanFile(filepath.Join(tmpDir, "ok.go")); err != nil || !ok {
		t.Errorf("ScanFile(ok.go) = %v, %v, want true", ok, err)
	}
	if ok, _ := s.ScanFile(filepath.Join(tmpDir, "notes.md")); ok {
		t.Error("ScanFile(notes.md) should be false")
	}
	if ok, _ := s.ScanFile(tmpDir); ok {
		t.Error("ScanFile(dir) should be false")
	}
	if _, err := s.ScanFile(filepath.Join(tmpDir, "missing.go")); err == nil {
		t.Error("ScanFile(missing) should error")
	}
}

func TestGroupByLanguage(t *testing.T) {
	groups := New(nil).GroupByLanguage([]string{"a.go", "b.go", "c.py", "d.txt"})
	if len(groups[lang.Go]) != 2 {
		t.Errorf("go group = %v, want 2 files", groups[lang.Go])
	}
	if len(groups[lang.Python]) != 1 {
		t.Errorf("python group = %v, want 1 file", groups[lang.Python])
	}
	if _, ok := groups[lang.Unknown]; ok {
		t.Error("unknown files should not be grouped")
	}
}

func TestFilterBySize(t *testing.T) {
	tmpDir := writeTree(t, map[string]string{
		"small.go": "package s\n",
		"big.go":   "package b\n// " + string(make([]byte, 4096)) + "\n",
	})
	files := []string{filepath.Join(tmpDir, "small.go"), filepath.Join(tmpDir, "big.go")}

	kept, skipped := FilterBySize(files, 1024)
	if len(kept) != 1 || skipped != 1 {
		t.Errorf("FilterBySize() = %v kept, %d skipped; want 1 and 1", kept, skipped)
	}

	kept, skipped = FilterBySize(files, 0)
	if len(kept) != 2 || skipped != 0 {
		t.Error("FilterBySize(0) should keep everything")
	}
}
