package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/jsupreme/bgkit/internal/core/domain"
	"github.com/jsupreme/bgkit/internal/core/ports"
	"github.com/jsupreme/bgkit/internal/fsutil"
)

// DefaultMountPoint is the public URL prefix for background images
const DefaultMountPoint = "/static/img"

type searchDir struct {
	origin domain.Origin
	path   string
}

// ResolverService maps page keys to servable background image URLs.
// Every call checks the filesystem again; nothing is cached.
type ResolverService struct {
	dirs       []searchDir
	mountPoint string
}

// NewResolverService creates a resolver that checks preferredDir before fallbackDir
func NewResolverService(preferredDir, fallbackDir, mountPoint string) *ResolverService {
	if mountPoint == "" {
		mountPoint = DefaultMountPoint
	}
	mountPoint = "/" + strings.Trim(mountPoint, "/")

	return &ResolverService{
		dirs: []searchDir{
			{origin: domain.OriginPreferred, path: preferredDir},
			{origin: domain.OriginFallback, path: fallbackDir},
		},
		mountPoint: mountPoint,
	}
}

// Ensure it implements the interface
var _ ports.Resolver = (*ResolverService)(nil)

// Locate returns the path of filename in the first directory that holds it.
// An entry that cannot be used, such as a dangling or escaping symlink, counts as absent.
func (s *ResolverService) Locate(filename string) (string, domain.Origin, error) {
	if err := fsutil.CheckName(filename); err != nil {
		return "", "", fmt.Errorf("invalid filename %q: %w", filename, err)
	}

	for _, dir := range s.dirs {
		p, err := fsutil.JoinFile(dir.path, filename)
		if err != nil {
			continue
		}
		if _, ok := fsutil.IsRegularFile(p); ok {
			return p, dir.origin, nil
		}
	}
	return "", "", fmt.Errorf("%w: %s", domain.ErrNotFound, filename)
}

// Resolve maps a page key to an existing background image
func (s *ResolverService) Resolve(ctx context.Context, page string) (*domain.Background, error) {
	slot, err := domain.ParseSlot(page)
	if err != nil {
		return nil, err
	}

	filename := slot.Filename()
	p, origin, err := s.Locate(filename)
	if err != nil {
		return nil, err
	}

	return &domain.Background{
		Slot:     slot,
		Filename: filename,
		Origin:   origin,
		Path:     p,
		URL:      s.URL(filename),
	}, nil
}

// URLFor returns the image URL for a page, or false when there is nothing to show
func (s *ResolverService) URLFor(ctx context.Context, page string) (string, bool) {
	bg, err := s.Resolve(ctx, page)
	if err != nil {
		return "", false
	}
	return bg.URL, true
}

// URL builds the public URL of a filename under the mount point
func (s *ResolverService) URL(filename string) string {
	return path.Join(s.mountPoint, filename)
}

// Report lists the presence of every slot in both directories
func (s *ResolverService) Report(ctx context.Context) []domain.SlotStatus {
	slots := domain.Slots()
	statuses := make([]domain.SlotStatus, 0, len(slots))

	for _, slot := range slots {
		st := domain.SlotStatus{
			Slot:     slot,
			Filename: slot.Filename(),
		}

		for _, dir := range s.dirs {
			p, err := fsutil.JoinFile(dir.path, st.Filename)
			if err != nil {
				continue
			}
			fi, ok := fsutil.IsRegularFile(p)
			if !ok {
				continue
			}

			switch dir.origin {
			case domain.OriginPreferred:
				st.InPreferred = true
			case domain.OriginFallback:
				st.InFallback = true
			}

			// First hit wins
			if st.URL == "" {
				st.URL = s.URL(st.Filename)
				st.Size = fi.Size()
				st.ResolvedFrom = dir.origin
			}
		}

		statuses = append(statuses, st)
	}

	return statuses
}

// IsAbsence reports whether err means "no image to render" rather than a real failure
func IsAbsence(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnknownSlot)
}
