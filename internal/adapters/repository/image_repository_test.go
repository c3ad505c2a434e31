package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jsupreme/bgkit/internal/fsutil"
)

func TestDirImageStore_Write_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store := NewDirImageStore(dir)

	if err := store.Write(context.Background(), "home_bg_1920x1080.jpg", []byte("image data")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "home_bg_1920x1080.jpg"))
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != "image data" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestDirImageStore_Write_Overwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewDirImageStore(dir)
	ctx := context.Background()

	if err := store.Write(ctx, "terms_bg_1920x1080.jpg", []byte("first")); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := store.Write(ctx, "terms_bg_1920x1080.jpg", []byte("second, longer")); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "terms_bg_1920x1080.jpg"))
	if string(data) != "second, longer" {
		t.Errorf("expected overwritten content, got %q", data)
	}
}

func TestDirImageStore_Write_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	store := NewDirImageStore(dir)

	if err := store.Write(context.Background(), "start_bg_1920x1080.jpg", []byte("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file, got %d", len(entries))
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestDirImageStore_Write_RejectsTraversal(t *testing.T) {
	store := NewDirImageStore(t.TempDir())

	err := store.Write(context.Background(), "../escape.jpg", []byte("x"))
	if !errors.Is(err, fsutil.ErrPathTraversal) {
		t.Errorf("expected ErrPathTraversal, got %v", err)
	}
}

func TestDirImageStore_Write_UnwritableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	parent := t.TempDir()
	if err := os.Chmod(parent, 0555); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}
	defer os.Chmod(parent, 0755)

	store := NewDirImageStore(filepath.Join(parent, "images"))
	if err := store.Write(context.Background(), "home_bg_1920x1080.jpg", []byte("x")); err == nil {
		t.Fatal("expected error for unwritable directory")
	}
}

func TestDirImageStore_Write_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	store := NewDirImageStore(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Write(ctx, "home_bg_1920x1080.jpg", []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "home_bg_1920x1080.jpg")); !os.IsNotExist(err) {
		t.Error("no file should be written after cancellation")
	}
}

func TestDirImageStore_Stat(t *testing.T) {
	dir := t.TempDir()
	store := NewDirImageStore(dir)
	ctx := context.Background()

	store.Write(ctx, "privacy_bg_1920x1080.jpg", []byte("12345"))

	size, err := store.Stat(ctx, "privacy_bg_1920x1080.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 5 {
		t.Errorf("expected size 5, got %d", size)
	}

	if _, err := store.Stat(ctx, "missing.jpg"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestDirImageStore_Path(t *testing.T) {
	dir := t.TempDir()
	store := NewDirImageStore(dir)

	got := store.Path("home_bg_1920x1080.jpg")
	if got != filepath.Join(dir, "home_bg_1920x1080.jpg") {
		t.Errorf("unexpected path: %s", got)
	}
}
