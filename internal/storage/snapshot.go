package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/deusflow/fieldbrief/internal/digest"
)

// SnapshotStore reads and writes the digest snapshot file.
type SnapshotStore struct {
	filePath string
}

// NewSnapshotStore creates a store backed by filePath.
func NewSnapshotStore(filePath string) *SnapshotStore {
	return &SnapshotStore{filePath: filePath}
}

func (s *SnapshotStore) Path() string {
	return s.filePath
}

// Load reads the snapshot. A missing or empty file returns (nil, nil).
func (s *SnapshotStore) Load() (*digest.Payload, error) {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var p digest.Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &p, nil
}

// Save writes the snapshot atomically: a temp file in the same directory is
// renamed over the target, so readers never see a partial file.
func (s *SnapshotStore) Save(p digest.Payload) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.filePath); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
