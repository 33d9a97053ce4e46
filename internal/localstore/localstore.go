// Package localstore simulates the browser's local storage: a flat string
// keyspace of JSON values. Values are cached in memory and mirrored to one
// file per key under a directory, so state survives a process restart the
// way local storage survives a reload. When the directory cannot be used the
// store degrades to memory-only instead of failing operations.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type Store struct {
	mu     sync.RWMutex
	dir    string // empty means memory-only
	cache  map[string][]byte
	logger *zap.Logger
}

// Open loads every existing key from dir. An empty dir, or one that cannot
// be created, yields a memory-only store.
func Open(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		dir:    dir,
		cache:  make(map[string][]byte),
		logger: logger,
	}
	if dir == "" {
		return s
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("storage directory unavailable, running memory-only",
			zap.String("dir", dir), zap.Error(err))
		s.dir = ""
		return s
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("cannot read storage directory, running memory-only",
			zap.String("dir", dir), zap.Error(err))
		s.dir = ""
		return s
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			logger.Warn("skipping unreadable key file", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		s.cache[decodeKey(strings.TrimSuffix(e.Name(), ".json"))] = data
	}
	return s
}

// Get unmarshals the value at key into v. Returns false if the key is absent
// or the stored bytes do not decode.
func (s *Store) Get(key string, v any) bool {
	s.mu.RLock()
	data, ok := s.cache[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("corrupt value in local store", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// GetString reads a bare string value.
func (s *Store) GetString(key string) (string, bool) {
	var v string
	if !s.Get(key, &v) {
		return "", false
	}
	return v, true
}

// Set writes v at key, synchronously. A write failure on disk leaves the
// in-memory value in place so the current session keeps working.
func (s *Store) Set(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("unencodable value not stored", zap.String("key", key), zap.Error(err))
		return
	}
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	s.persist(key, data)
}

// SetString writes a bare string value.
func (s *Store) SetString(key, v string) {
	s.Set(key, v)
}

// Delete removes key from the cache and from disk. Absent keys are a no-op.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
	if s.dir == "" {
		return
	}
	if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove key file", zap.String("key", key), zap.Error(err))
	}
}

// Keys returns every key with the given prefix, in no particular order.
func (s *Store) Keys(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for k := range s.cache {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}

func (s *Store) persist(key string, data []byte) {
	if s.dir == "" {
		return
	}
	if err := os.WriteFile(s.keyPath(key), data, 0o644); err != nil {
		s.logger.Warn("failed to persist key, value kept in memory",
			zap.String("key", key), zap.Error(err))
	}
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, encodeKey(key)+".json")
}

// Keys may contain characters that are awkward in file names; encode the few
// that matter and keep everything else readable.
func encodeKey(key string) string {
	return strings.NewReplacer("/", "%2F", "\\", "%5C").Replace(key)
}

func decodeKey(name string) string {
	return strings.NewReplacer("%2F", "/", "%5C", "\\").Replace(name)
}
