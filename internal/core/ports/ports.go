package ports

import (
	"context"

	"github.com/jsupreme/bgkit/internal/core/domain"
)

// ImageSource defines the port for fetching placeholder images
type ImageSource interface {
	// Fetch downloads one image of the requested dimensions
	Fetch(ctx context.Context, width, height int) ([]byte, error)
}

// ImageStore defines the port for persisting background images
type ImageStore interface {
	// Write stores data under filename, replacing any existing file
	Write(ctx context.Context, filename string, data []byte) error

	// Stat returns the size of a stored file
	Stat(ctx context.Context, filename string) (int64, error)

	// Path returns the absolute path a filename is stored at
	Path(filename string) string
}

// Resolver defines the port consumed by page rendering code and the CLI
type Resolver interface {
	// Locate returns the path and origin of the first directory holding filename
	Locate(filename string) (string, domain.Origin, error)

	// Resolve maps a page key to an existing background image
	Resolve(ctx context.Context, page string) (*domain.Background, error)

	// Report lists the presence of every slot
	Report(ctx context.Context) []domain.SlotStatus
}
