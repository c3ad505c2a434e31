package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsupreme/bgkit/internal/core/domain"
	"github.com/jsupreme/bgkit/internal/testutil"
)

func TestInspect(t *testing.T) {
	info, err := Inspect(testutil.JPEG(t, 64, 36), DefaultMinBytes)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !info.IsJPEG() {
		t.Errorf("Expected jpg, got %q", info.Extension)
	}
	if info.MIME != "image/jpeg" {
		t.Errorf("Expected image/jpeg, got %q", info.MIME)
	}
	if info.Width != 64 || info.Height != 36 {
		t.Errorf("Expected 64x36, got %dx%d", info.Width, info.Height)
	}
	if info.FullSize() {
		t.Error("64x36 should not count as full size")
	}
}

func TestInspectFullSize(t *testing.T) {
	info, err := Inspect(testutil.JPEG(t, domain.Width, domain.Height), DefaultMinBytes)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !info.FullSize() {
		t.Errorf("Expected full size, got %dx%d", info.Width, info.Height)
	}
}

func TestInspectRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, domain.ErrTooSmall},
		{"tiny", []byte{0xFF, 0xD8, 0xFF}, domain.ErrTooSmall},
		{"html", testutil.HTML(4096), domain.ErrNotImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Inspect(tt.data, DefaultMinBytes); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestInspectNonJPEG(t *testing.T) {
	info, err := Inspect(testutil.PNG(4096), DefaultMinBytes)
	if err != nil {
		t.Fatalf("PNG should be accepted: %v", err)
	}
	if info.IsJPEG() {
		t.Error("PNG reported as JPEG")
	}
}

func TestInspectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.SlotHome.Filename())
	if err := os.WriteFile(path, testutil.JPEG(t, 64, 36), 0644); err != nil {
		t.Fatal(err)
	}

	info, err := InspectFile(path, DefaultMinBytes)
	if err != nil {
		t.Fatalf("InspectFile failed: %v", err)
	}
	if info.Bytes <= 1024 {
		t.Errorf("Unexpected size %d", info.Bytes)
	}

	if _, err := InspectFile(filepath.Join(t.TempDir(), "missing.jpg"), DefaultMinBytes); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
