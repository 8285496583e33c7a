package eval

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/yapl/value"
	"github.com/ardnew/yapl/yerr"
)

// ModuleCache memoizes a module's evaluated export Object, keyed by the
// resolved absolute path hashed with xxh3 and invalidated by ModTime.
//
// This is a performance refinement only: each import still evaluates its
// module in a fresh root environment; only the already-produced exports
// value is reused across repeated imports of the same unchanged file within
// one process.
type ModuleCache struct {
	mu      sync.Mutex
	entries map[uint64]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	exports value.Value
}

// NewModuleCache creates an empty ModuleCache.
func NewModuleCache() *ModuleCache {
	return &ModuleCache{entries: make(map[uint64]cacheEntry)}
}

func hashPath(path string) uint64 {
	return xxh3.HashString(path)
}

// Lookup returns the cached exports for path if present and not stale
// relative to modTime.
func (c *ModuleCache) Lookup(path string, modTime time.Time) (value.Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[hashPath(path)]
	if !ok || !e.modTime.Equal(modTime) {
		return value.Value{}, false
	}

	return e.exports, true
}

// Store records exports for path as of modTime.
func (c *ModuleCache) Store(path string, modTime time.Time, exports value.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[hashPath(path)] = cacheEntry{modTime: modTime, exports: exports}
}

// ReadFile reads path through a read-ahead prefetching wrapper, returning
// its contents and modification time. Failures surface as an IO error.
func ReadFile(path string) ([]byte, time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, time.Time{}, yerr.ErrIO.Wrap(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, time.Time{}, yerr.ErrIO.Wrap(err)
	}

	rc := readahead.NewReadCloser(f)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, time.Time{}, yerr.ErrIO.Wrap(err)
	}

	return data, info.ModTime(), nil
}
