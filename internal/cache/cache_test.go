package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stratametrics/strata/pkg/analyzer"
	"github.com/stratametrics/strata/pkg/spaces"
)

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()

	c, err := New(filepath.Join(tmpDir, "cache"), 24, true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !c.enabled {
		t.Error("cache should be enabled")
	}

	c, err = New("", 0, false)
	if err != nil {
		t.Fatalf("New() error for disabled cache: %v", err)
	}
	if c.enabled {
		t.Error("cache should be disabled")
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "nested", "cache", "dir")
	if _, err := New(cacheDir, 24, true); err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if info, err := os.Stat(cacheDir); err != nil || !info.IsDir() {
		t.Error("New() should create the cache directory")
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	c, err := New(t.TempDir(), 24, true)
	if err != nil {
		t.Fatal(err)
	}

	hash := HashBytes([]byte("content"))
	if err := c.Set("src/a.go", hash, []byte("payload")); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, ok := c.Get("src/a.go", hash)
	if !ok {
		t.Fatal("Get() should hit")
	}
	if string(data) != "payload" {
		t.Errorf("Get() = %q, want payload", data)
	}
}

func TestGetRejectsStaleHash(t *testing.T) {
	c, err := New(t.TempDir(), 24, true)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set("src/a.go", HashBytes([]byte("v1")), []byte("old")); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("src/a.go", HashBytes([]byte("v2"))); ok {
		t.Error("Get() must miss when the content hash changed")
	}
}

func TestGetExpiredEntry(t *testing.T) {
	c, err := New(t.TempDir(), 24, true)
	if err != nil {
		t.Fatal(err)
	}
	c.ttl = -time.Hour // everything is instantly expired

	hash := HashBytes([]byte("x"))
	if err := c.Set("k", hash, []byte("v")); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("k", hash); ok {
		t.Error("Get() must miss past the TTL")
	}
}

func TestDisabledCacheIsNoop(t *testing.T) {
	c, _ := New("", 0, false)
	if err := c.Set("k", "h", []byte("v")); err != nil {
		t.Errorf("disabled Set() error: %v", err)
	}
	if _, ok := c.Get("k", "h"); ok {
		t.Error("disabled Get() should miss")
	}
	if err := c.Clear(); err != nil {
		t.Errorf("disabled Clear() error: %v", err)
	}
}

func TestResultRoundTrip(t *testing.T) {
	c, err := New(t.TempDir(), 24, true)
	if err != nil {
		t.Fatal(err)
	}

	res := &analyzer.FileResult{
		Path:     "lib/demo.go",
		Language: "go",
		Root: &spaces.Space{
			Name:      "lib/demo.go",
			Kind:      spaces.KindUnit,
			StartLine: 1,
			EndLine:   10,
		},
	}
	hash := HashBytes([]byte("source"))
	if err := c.SetResult(res.Path, hash, res); err != nil {
		t.Fatalf("SetResult() error: %v", err)
	}

	got, ok := c.GetResult(res.Path, hash)
	if !ok {
		t.Fatal("GetResult() should hit")
	}
	if got.Path != res.Path || got.Language != res.Language {
		t.Errorf("GetResult() = %+v, want %+v", got, res)
	}
	if got.Root == nil || got.Root.Kind != spaces.KindUnit {
		t.Error("GetResult() should restore the space tree")
	}
}

func TestInvalidate(t *testing.T) {
	c, err := New(t.TempDir(), 24, true)
	if err != nil {
		t.Fatal(err)
	}
	hash := HashBytes([]byte("x"))
	if err := c.Set("k", hash, []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := c.Invalidate("k"); err != nil {
		t.Fatalf("Invalidate() error: %v", err)
	}
	if _, ok := c.Get("k", hash); ok {
		t.Error("Get() should miss after Invalidate")
	}
}

func TestGetStats(t *testing.T) {
	c, err := New(t.TempDir(), 24, true)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(k, "h", []byte(k)); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := c.GetStats()
	if err != nil {
		t.Fatalf("GetStats() error: %v", err)
	}
	if stats.Entries != 3 {
		t.Errorf("Entries = %d, want 3", stats.Entries)
	}
	if stats.TotalSize <= 0 {
		t.Error("TotalSize should be positive")
	}
}
