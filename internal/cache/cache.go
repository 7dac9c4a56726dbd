// Package cache stores per-file analysis results on disk so unchanged files
// skip re-parsing. Entries are keyed by path and validated against a BLAKE3
// content hash, so a stale entry can never shadow an edited file.
package cache

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"

	"github.com/stratametrics/strata/pkg/analyzer"
)

// Cache is a file-backed result cache. The zero-value disabled cache is
// safe to use; every operation becomes a no-op miss.
type Cache struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// Entry is one stored result with its validation hash.
type Entry struct {
	Hash      string    `json:"hash"`
	Timestamp time.Time `json:"timestamp"`
	Data      []byte    `json:"data"`
}

// New creates a cache rooted at dir. Disabled caches skip the directory
// creation entirely.
func New(dir string, ttlHours int, enabled bool) (*Cache, error) {
	if !enabled {
		return &Cache{}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{
		dir:     dir,
		ttl:     time.Duration(ttlHours) * time.Hour,
		enabled: true,
	}, nil
}

// HashFile computes the BLAKE3 content hash of a file.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return HashBytes(data), nil
}

// HashBytes computes the BLAKE3 hash of a buffer as a hex string.
func HashBytes(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Get returns the stored data for key when the entry exists, carries the
// expected content hash and has not aged past the TTL. Expired entries are
// removed on sight.
func (c *Cache) Get(key, hash string) ([]byte, bool) {
	if !c.enabled {
		return nil, false
	}

	path := c.keyPath(key)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	if entry.Hash != hash {
		return nil, false
	}
	if time.Since(entry.Timestamp) > c.ttl {
		os.Remove(path)
		return nil, false
	}
	return entry.Data, true
}

// Set stores data under key, tagged with the content hash it was computed
// from.
func (c *Cache) Set(key, hash string, data []byte) error {
	if !c.enabled {
		return nil
	}
	raw, err := json.Marshal(Entry{
		Hash:      hash,
		Timestamp: time.Now(),
		Data:      data,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(key), raw, 0o600)
}

// GetResult returns the cached analysis for a source file whose current
// content hashes to hash.
func (c *Cache) GetResult(path, hash string) (*analyzer.FileResult, bool) {
	data, ok := c.Get(path, hash)
	if !ok {
		return nil, false
	}
	var res analyzer.FileResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false
	}
	return &res, true
}

// SetResult stores one file's analysis keyed by its path and content hash.
func (c *Cache) SetResult(path, hash string, res *analyzer.FileResult) error {
	if !c.enabled {
		return nil
	}
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.Set(path, hash, data)
}

// Invalidate removes one entry.
func (c *Cache) Invalidate(key string) error {
	if !c.enabled {
		return nil
	}
	return os.Remove(c.keyPath(key))
}

// Clear removes every entry.
func (c *Cache) Clear() error {
	if !c.enabled {
		return nil
	}
	return os.RemoveAll(c.dir)
}

// keyPath maps a key to a filename. xxhash is enough here; the name only
// needs to be stable and filesystem-safe, collisions are caught by the
// content hash inside the entry.
func (c *Cache) keyPath(key string) string {
	sum := xxhash.Sum64String(key)
	return filepath.Join(c.dir, strconv.FormatUint(sum, 16)+".json")
}

// Stats summarizes what the cache currently holds.
type Stats struct {
	Entries   int           `json:"entries"`
	TotalSize int64         `json:"total_size"`
	OldestAge time.Duration `json:"oldest_age"`
	NewestAge time.Duration `json:"newest_age"`
}

// GetStats walks the cache directory and reports entry counts and ages.
func (c *Cache) GetStats() (*Stats, error) {
	if !c.enabled {
		return &Stats{}, nil
	}

	stats := &Stats{}
	var oldest, newest time.Time

	err := filepath.Walk(c.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		stats.Entries++
		stats.TotalSize += info.Size()

		modTime := info.ModTime()
		if oldest.IsZero() || modTime.Before(oldest) {
			oldest = modTime
		}
		if newest.IsZero() || modTime.After(newest) {
			newest = modTime
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !oldest.IsZero() {
		stats.OldestAge = time.Since(oldest)
	}
	if !newest.IsZero() {
		stats.NewestAge = time.Since(newest)
	}
	return stats, nil
}
