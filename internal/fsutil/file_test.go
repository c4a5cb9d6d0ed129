package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenReadsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.tgif")
	want := []byte("hello tgif")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if string(f.Bytes()) != string(want) {
		t.Errorf("got %q, want %q", f.Bytes(), want)
	}
}

func TestOpenRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.tgif")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected an error opening an empty file")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.tgif")); err == nil {
		t.Fatal("expected an error opening a missing file")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.tgif")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
}
