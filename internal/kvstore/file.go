package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File persists all keys in a single JSON snapshot on disk. Writes are
// atomic: the snapshot goes to a temp file first and is renamed over the
// original, so an interrupted write never corrupts the existing file.
type File struct {
	path string
}

// NewFile creates a file store backed by the snapshot at path. The file
// is created on first Set; a missing file reads as an empty store.
func NewFile(path string) *File {
	return &File{path: path}
}

// Get implements Store.
func (f *File) Get(key string) ([]byte, bool, error) {
	snap, err := f.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := snap[key]
	return v, ok, nil
}

// Set implements Store.
func (f *File) Set(key string, value []byte) error {
	snap, err := f.load()
	if err != nil {
		return err
	}
	snap[key] = json.RawMessage(value)

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating store dir: %w", err)
		}
	}

	// Indented output keeps the snapshot inspectable by hand.
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

func (f *File) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}

	snap := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", f.path, err)
	}
	return snap, nil
}
