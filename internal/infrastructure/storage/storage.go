// Package storage implements the flat-file JSON document store backing the
// dataset repositories. One pretty-printed UTF-8 JSON document per file,
// fully replaced on every write. There is no cross-process locking and no
// atomic rename; the write call itself is the only atomicity available.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Store reads and writes JSON documents under a single data directory.
// Writes are serialized per process with a mutex so one process cannot
// interleave its own writes to the same file; concurrent processes still
// race last-write-wins.
type Store struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// New creates a store rooted at dir on the given filesystem.
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// NewOS creates a store over the real filesystem.
func NewOS(dir string) *Store {
	return New(afero.NewOsFs(), dir)
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Exists reports whether the named document exists.
func (s *Store) Exists(name string) (bool, error) {
	ok, err := afero.Exists(s.fs, s.path(name))
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
	return ok, nil
}

// ReadRaw returns the raw contents of the named document.
func (s *Store) ReadRaw(name string) (json.RawMessage, error) {
	content, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return json.RawMessage(content), nil
}

// WriteRaw re-indents the raw JSON document and fully replaces the named
// file with it.
func (s *Store) WriteRaw(name string, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indent %s: %w", name, err)
	}
	return s.write(name, buf.Bytes())
}

// WriteValue marshals v and fully replaces the named file with it.
func (s *Store) WriteValue(name string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	return s.write(name, content)
}

// Remove deletes the named document. Removing an absent document is not an
// error.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

// HealthCheck verifies the data directory exists or can be created.
func (s *Store) HealthCheck() error {
	if err := s.fs.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("data directory unavailable: %w", err)
	}
	return nil
}

func (s *Store) write(name string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path(name), content, fileMode); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
