package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jsupreme/bgkit/internal/core/ports"
)

const (
	// DefaultURLTemplate serves a random photo of the requested size
	DefaultURLTemplate = "https://picsum.photos/{width}/{height}"
	DefaultTimeout     = 30 * time.Second
	DefaultUserAgent   = "bgkit"

	maxBodyBytes = 25 << 20
)

// HTTPSource downloads placeholder images over plain HTTP(S)
type HTTPSource struct {
	client      *http.Client
	urlTemplate string
	userAgent   string
}

// NewHTTPSource creates a source for a URL template containing {width} and {height}
func NewHTTPSource(urlTemplate, userAgent string, timeout time.Duration) *HTTPSource {
	if urlTemplate == "" {
		urlTemplate = DefaultURLTemplate
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPSource{
		client:      &http.Client{Timeout: timeout},
		urlTemplate: urlTemplate,
		userAgent:   userAgent,
	}
}

// Ensure it implements the interface
var _ ports.ImageSource = (*HTTPSource)(nil)

// URL expands the template for the given dimensions
func (s *HTTPSource) URL(width, height int) string {
	r := strings.NewReplacer(
		"{width}", strconv.Itoa(width),
		"{height}", strconv.Itoa(height),
	)
	return r.Replace(s.urlTemplate)
}

// Fetch downloads one image
func (s *HTTPSource) Fetch(ctx context.Context, width, height int) ([]byte, error) {
	url := s.URL(width, height)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "image/jpeg,image/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	if len(data) > maxBodyBytes {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, maxBodyBytes)
	}

	return data, nil
}

// StatusError is returned for non-success HTTP responses
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}
