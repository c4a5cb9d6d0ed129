//go:build unix

package fsutil

import "syscall"

// mmapTGIFFile maps a .tgif file's bytes read-only. The fd can be closed
// once the mapping returns; the kernel keeps the pages.
func mmapTGIFFile(fd uintptr, size int) ([]byte, error) {
	return syscall.Mmap(int(fd), 0, size, syscall.PROT_READ, syscall.MAP_PRIVATE)
}

// munmapTGIFFile tears down a mapping made by mmapTGIFFile.
func munmapTGIFFile(data []byte) error {
	return syscall.Munmap(data)
}
