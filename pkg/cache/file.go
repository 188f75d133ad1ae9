package cache

import (
	"context"
	"os"
	"path/filepath"
)

// DefaultFileName is the snapshot file name inside the cache directory.
const DefaultFileName = "cache.json"

// FileStore keeps the snapshot in a single JSON file.
//
// Saves go through a sibling temporary file (path + ".tmp") that is synced
// and then renamed over the target, so a crash mid-write leaves the previous
// snapshot intact.
type FileStore struct {
	path string
}

// NewFileStore creates a file store for the snapshot at path. The parent
// directory is created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the snapshot file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) tmpPath() string { return s.path + ".tmp" }

// Load reads the snapshot file.
func (s *FileStore) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

// Save writes data to the temporary path and renames it over the snapshot.
func (s *FileStore) Save(ctx context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.tmpPath()
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the snapshot and any leftover temporary file.
func (s *FileStore) Clear(ctx context.Context) error {
	_ = os.Remove(s.tmpPath())
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
