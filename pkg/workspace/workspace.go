package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsupreme/bgkit/pkg/config"
)

// Workspace represents the web project whose background images are managed
type Workspace struct {
	RootPath      string
	PreferredPath string
	FallbackPath  string
	ConfigPath    string
}

// New creates a Workspace rooted at root, or at the current directory when root is empty
func New(root string) (*Workspace, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	ws := &Workspace{
		RootPath:   abs,
		ConfigPath: filepath.Join(abs, config.FileName),
	}
	ws.Apply(config.DefaultConfig())

	return ws, nil
}

// Apply resolves the configured directories against the project root
func (w *Workspace) Apply(cfg *config.Config) {
	w.PreferredPath = w.resolve(cfg.PreferredDir)
	w.FallbackPath = w.resolve(cfg.FallbackDir)
}

func (w *Workspace) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(w.RootPath, dir)
}

// Initialize creates both image directories if they don't exist
func (w *Workspace) Initialize() error {
	for _, dir := range []string{w.PreferredPath, w.FallbackPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Rel returns path relative to the project root for display
func (w *Workspace) Rel(path string) string {
	rel, err := filepath.Rel(w.RootPath, path)
	if err != nil {
		return path
	}
	return rel
}

// DirExists checks if path is an existing directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
