package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreLoadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", DefaultFileName))
	if _, err := s.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)
	s := NewFileStore(path)

	if err := s.Save(ctx, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Save(ctx, []byte(`{"b":2}`)); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if string(data) != `{"b":2}` {
		t.Errorf("Load() = %s, want the latest snapshot", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Save should not leave the temporary file behind")
	}
}

func TestFileStoreSaveKeepsPreviousOnFailure(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	s := NewFileStore(path)

	if err := s.Save(ctx, []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	// A directory squatting on the temp path makes the next write fail.
	if err := os.Mkdir(path+".tmp", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, []byte(`{"b":2}`)); err == nil {
		t.Fatal("Save should fail when the temporary path is unusable")
	}

	data, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("previous snapshot was damaged: %s", data)
	}
}

func TestFileStoreClear(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), DefaultFileName))

	if err := s.Clear(ctx); err != nil {
		t.Errorf("Clear on absent snapshot: %v", err)
	}
	if err := s.Save(ctx, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Clear = %v, want ErrNotFound", err)
	}
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	s := NewNullStore()

	if err := s.Save(ctx, []byte("x")); err != nil {
		t.Errorf("Save error: %v", err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Error("NullStore.Load should always report ErrNotFound")
	}
	if err := s.Clear(ctx); err != nil {
		t.Errorf("Clear error: %v", err)
	}
}
