// Package fsutil provides read-only, memory-mapped access to .tgif files
// for the CLI and decoder paths that work straight off disk.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// errMmapUnsupported signals that this build has no mmap path at all — the
// !unix build tag, not a mapping that was attempted against a real file
// descriptor and failed. Open uses the distinction to decide whether a
// failed mmapTGIFFile call should fall back to os.ReadFile silently (this
// platform never had mmap) or be reported (mmap exists here but this
// particular .tgif file couldn't be mapped, which usually means a deeper
// problem, like the file living on a filesystem that doesn't support it).
var errMmapUnsupported = errors.New("mmap not supported on this platform")

// File is a read-only view of a .tgif file's bytes, backed by mmap on
// platforms that have it and by a plain in-memory copy on platforms that
// do not. On an mmap platform a failed mapping is an error from Open, not
// a fallback to a copy.
type File struct {
	data    []byte
	mmapped bool
}

// Open maps path into memory. Grounded on internal/cog/reader.go's Open:
// stat, reject empty files, mmap, wrap every failure with the path. Unlike
// that reader, which assumes a Unix host running alongside the tile
// server, Open treats mmapTGIFFile's failure as two distinct cases: on a
// platform with no mmap support at all it silently falls back to
// os.ReadFile, since this package backs a general-purpose CLI rather than
// a server; any other mmap failure is surfaced, since it usually means
// the .tgif file or its filesystem is unusable in a way os.ReadFile would
// hit too.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	size := fi.Size()
	if size == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	data, err := mmapTGIFFile(f.Fd(), int(size))
	if err == nil {
		return &File{data: data, mmapped: true}, nil
	}
	if !errors.Is(err, errMmapUnsupported) {
		return nil, fmt.Errorf("mapping %s into memory: %w", path, err)
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &File{data: data}, nil
}

// Bytes returns the file's contents. The returned slice is only valid
// until Close.
func (f *File) Bytes() []byte { return f.data }

// Close releases the mapping, or simply drops the in-memory copy.
func (f *File) Close() error {
	if f.data == nil {
		return nil
	}
	if f.mmapped {
		err := munmapTGIFFile(f.data)
		f.data = nil
		return err
	}
	f.data = nil
	return nil
}
