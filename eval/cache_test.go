package eval_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ardnew/yapl/eval"
	"github.com/ardnew/yapl/value"
)

func TestModuleCacheLookupMissBeforeStore(t *testing.T) {
	c := eval.NewModuleCache()

	if _, ok := c.Lookup("/nowhere.yapl", time.Now()); ok {
		t.Error("empty cache should never hit")
	}
}

func TestModuleCacheStoreThenLookup(t *testing.T) {
	c := eval.NewModuleCache()
	now := time.Now()

	c.Store("/mod.yapl", now, value.Int(1))

	v, ok := c.Lookup("/mod.yapl", now)
	if !ok {
		t.Fatal("expected cache hit after Store")
	}

	if n, _ := v.AsNumber(); n.Int64() != 1 {
		t.Errorf("cached value = %v, want 1", n.Int64())
	}
}

func TestModuleCacheInvalidatedByModTime(t *testing.T) {
	c := eval.NewModuleCache()
	t1 := time.Now()
	t2 := t1.Add(time.Second)

	c.Store("/mod.yapl", t1, value.Int(1))

	if _, ok := c.Lookup("/mod.yapl", t2); ok {
		t.Error("a changed modTime should invalidate the cache entry")
	}
}

func TestReadFileReturnsContentsAndModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.yapl")

	if err := os.WriteFile(path, []byte("null"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	data, modTime, err := eval.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	if string(data) != "null" {
		t.Errorf("ReadFile data = %q, want %q", data, "null")
	}

	if modTime.IsZero() {
		t.Error("ReadFile should return a non-zero ModTime")
	}
}

func TestReadFileMissingFile(t *testing.T) {
	if _, _, err := eval.ReadFile("/does/not/exist.yapl"); err == nil {
		t.Error("expected an IO error for a missing file")
	}
}
