package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jsupreme/bgkit/internal/core/domain"
	"github.com/jsupreme/bgkit/internal/core/ports"
)

// ErrShortWrite means the stored file does not match the downloaded payload
var ErrShortWrite = errors.New("stored file is incomplete")

// DefaultMinBytes rejects payloads too small to be a real 1920x1080 image
const DefaultMinBytes = 1024

// FetchService downloads placeholder images into the fallback directory
type FetchService struct {
	source   ports.ImageSource
	store    ports.ImageStore
	log      *zap.Logger
	minBytes int
}

// NewFetchService creates a new fetch service
func NewFetchService(source ports.ImageSource, store ports.ImageStore, log *zap.Logger, minBytes int) *FetchService {
	if log == nil {
		log = zap.NewNop()
	}
	if minBytes <= 0 {
		minBytes = DefaultMinBytes
	}
	return &FetchService{
		source:   source,
		store:    store,
		log:      log,
		minBytes: minBytes,
	}
}

// FetchRequest represents a request to download placeholders
type FetchRequest struct {
	Slots []domain.Slot // Empty means every slot
}

// FetchResult is the outcome for a single file
type FetchResult struct {
	Slot     domain.Slot
	Filename string
	Path     string
	Bytes    int64
	Duration time.Duration
	Err      error
}

// OK reports whether the file was written
func (r FetchResult) OK() bool {
	return r.Err == nil
}

// FetchResponse represents the outcome of a fetch run
type FetchResponse struct {
	Results   []FetchResult
	Succeeded int
	Failed    int
}

// Execute fetches each slot in turn. A failing slot does not stop the others;
// the returned error combines every per-file failure.
func (s *FetchService) Execute(ctx context.Context, req FetchRequest) (*FetchResponse, error) {
	slots := req.Slots
	if len(slots) == 0 {
		slots = domain.Slots()
	}

	for _, slot := range slots {
		if !slot.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSlot, slot)
		}
	}

	resp := &FetchResponse{Results: make([]FetchResult, 0, len(slots))}
	var errs error

	for _, slot := range slots {
		if err := ctx.Err(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("fetch interrupted before %s: %w", slot.Filename(), err))
			break
		}

		res := s.fetchOne(ctx, slot)
		resp.Results = append(resp.Results, res)

		if res.Err != nil {
			resp.Failed++
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", res.Filename, res.Err))
			s.log.Error("Placeholder download failed",
				zap.String("file", res.Filename), zap.Error(res.Err))
			continue
		}

		resp.Succeeded++
		s.log.Info("Placeholder saved",
			zap.String("file", res.Filename),
			zap.Int64("bytes", res.Bytes),
			zap.Duration("took", res.Duration))
	}

	return resp, errs
}

func (s *FetchService) fetchOne(ctx context.Context, slot domain.Slot) FetchResult {
	start := time.Now()
	res := FetchResult{
		Slot:     slot,
		Filename: slot.Filename(),
		Path:     s.store.Path(slot.Filename()),
	}

	s.log.Debug("Fetching placeholder",
		zap.String("slot", slot.String()),
		zap.Int("width", domain.Width),
		zap.Int("height", domain.Height))

	data, err := s.source.Fetch(ctx, domain.Width, domain.Height)
	if err != nil {
		res.Err = fmt.Errorf("download failed: %w", err)
		res.Duration = time.Since(start)
		return res
	}

	if err := s.validate(data); err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	if err := s.store.Write(ctx, res.Filename, data); err != nil {
		res.Err = fmt.Errorf("write failed: %w", err)
		res.Duration = time.Since(start)
		return res
	}

	size, err := s.store.Stat(ctx, res.Filename)
	switch {
	case err != nil:
		res.Err = fmt.Errorf("write not visible: %w", err)
	case size != int64(len(data)):
		res.Err = fmt.Errorf("%w: stored %d of %d bytes", ErrShortWrite, size, len(data))
	}
	if res.Err != nil {
		res.Duration = time.Since(start)
		return res
	}

	res.Bytes = size
	res.Duration = time.Since(start)
	return res
}

// validate rejects empty bodies and error pages served with a success status
func (s *FetchService) validate(data []byte) error {
	info, err := Inspect(data, s.minBytes)
	if err != nil {
		return err
	}

	if !info.IsJPEG() {
		s.log.Warn("Placeholder is not a JPEG, saving anyway",
			zap.String("mime", info.MIME))
	}
	return nil
}
