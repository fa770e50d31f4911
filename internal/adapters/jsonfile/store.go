// Package jsonfile stores the session history as a single JSON array on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
	"github.com/ewilliams-labs/moodtunes/internal/core/ports"
)

// DefaultPath is the history file name used when none is configured.
const DefaultPath = "user_history.json"

// Store rewrites the whole file on every append so it is always a valid
// JSON array. The mutex makes read-modify-write atomic within one process.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ ports.HistoryStore = (*Store)(nil)

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

func (s *Store) Append(ctx context.Context, entry domain.SessionLogEntry) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("jsonfile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return s.write(entries)
}

// List returns every entry. A missing file is an empty history.
func (s *Store) List(ctx context.Context) ([]domain.SessionLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("jsonfile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *Store) read() ([]domain.SessionLogEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.SessionLogEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %s: %w", s.path, err)
	}

	entries := []domain.SessionLogEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("jsonfile: parse %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *Store) write(entries []domain.SessionLogEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("jsonfile: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("jsonfile: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("jsonfile: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("jsonfile: replace %s: %w", s.path, err)
	}
	return nil
}
