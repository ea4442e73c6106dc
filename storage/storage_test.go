package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	s := NewFileStore()

	if err := s.Save(path, "# Title\n\nbody\n"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "# Title\n\nbody\n" {
		t.Fatalf("text=%q, want %q", got, "# Title\n\nbody\n")
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	s := NewFileStore()

	if err := s.Save(path, "first"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(path, "second"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "second" {
		t.Fatalf("text=%q, want %q", got, "second")
	}
}

func TestFileStore_SaveCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "note.md")
	s := NewFileStore()

	if err := s.Save(path, "hi"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got, _ := s.Load(path); got != "hi" {
		t.Fatalf("text=%q, want %q", got, "hi")
	}
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore()

	if err := s.Save(filepath.Join(dir, "note.md"), "hi"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "note.md" {
		t.Fatalf("dir entries=%v, want only note.md", entries)
	}
}

func TestFileStore_Exists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	s := NewFileStore()

	ok, err := s.Exists(path)
	if err != nil || ok {
		t.Fatalf("Exists before save = %v, %v; want false, nil", ok, err)
	}
	if err := s.Save(path, "hi"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	ok, err = s.Exists(path)
	if err != nil || !ok {
		t.Fatalf("Exists after save = %v, %v; want true, nil", ok, err)
	}
}

func TestFileStore_LoadMissingFails(t *testing.T) {
	s := NewFileStore()
	if _, err := s.Load(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Fatalf("Load missing file succeeded, want error")
	}
}
