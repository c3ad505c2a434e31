package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jsupreme/bgkit/internal/core/ports"
	"github.com/jsupreme/bgkit/internal/fsutil"
)

// DirImageStore persists images as plain files in a single directory
type DirImageStore struct {
	dir string
	mu  sync.Mutex
}

// NewDirImageStore creates a store rooted at dir. The directory is created on first write.
func NewDirImageStore(dir string) *DirImageStore {
	return &DirImageStore{dir: dir}
}

// Ensure it implements the interface
var _ ports.ImageStore = (*DirImageStore)(nil)

// Dir returns the backing directory
func (r *DirImageStore) Dir() string {
	return r.dir
}

// Path returns the absolute path a filename is stored at
func (r *DirImageStore) Path(filename string) string {
	if p, err := fsutil.JoinFile(r.dir, filename); err == nil {
		return p
	}
	return filepath.Join(r.dir, filepath.Base(filename))
}

// Write replaces filename atomically: temp file in the same directory, fsync, rename
func (r *DirImageStore) Write(ctx context.Context, filename string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", r.dir, err)
	}

	dest, err := fsutil.JoinFile(r.dir, filename)
	if err != nil {
		return fmt.Errorf("invalid filename %q: %w", filename, err)
	}

	tmp, err := os.CreateTemp(r.dir, "."+filename+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", r.dir, err)
	}
	tmpPath := tmp.Name()

	// Remove the temp file on any failure below
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", filename, err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", filename, err)
	}

	committed = true
	return nil
}

// Stat returns the size of a stored file
func (r *DirImageStore) Stat(ctx context.Context, filename string) (int64, error) {
	p, err := fsutil.JoinFile(r.dir, filename)
	if err != nil {
		return 0, fmt.Errorf("invalid filename %q: %w", filename, err)
	}

	fi, ok := fsutil.IsRegularFile(p)
	if !ok {
		return 0, fmt.Errorf("%s: %w", filename, os.ErrNotExist)
	}
	return fi.Size(), nil
}
