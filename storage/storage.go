// Package storage persists documents to disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes named documents. Names are interpreted by the
// implementation; FileStore treats them as filesystem paths.
type Store interface {
	Load(name string) (string, error)
	Save(name, text string) error
	Exists(name string) (bool, error)
}

// FileStore is a Store over the local filesystem. Saves are atomic: the
// document is written to a temporary file in the target directory and then
// renamed over the destination.
type FileStore struct{}

func NewFileStore() *FileStore { return &FileStore{} }

func (s *FileStore) Load(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", name, err)
	}
	return string(data), nil
}

func (s *FileStore) Save(name, text string) error {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(name)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.WriteString(text)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpName)
		if werr != nil {
			return fmt.Errorf("save %s: %w", name, werr)
		}
		return fmt.Errorf("save %s: %w", name, cerr)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.Rename(tmpName, name); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) Exists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", name, err)
}
