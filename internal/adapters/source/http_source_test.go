package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsupreme/bgkit/internal/testutil"
)

func TestHTTPSource_URL(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"default", "", "https://picsum.photos/1920/1080"},
		{"path style", "https://example.com/{width}x{height}.jpg", "https://example.com/1920x1080.jpg"},
		{"query style", "https://example.com/img?w={width}&h={height}", "https://example.com/img?w=1920&h=1080"},
		{"no placeholders", "https://example.com/fixed.jpg", "https://example.com/fixed.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewHTTPSource(tt.template, "", 0)
			if got := s.URL(1920, 1080); got != tt.expected {
				t.Errorf("URL() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestHTTPSource_Fetch_Success(t *testing.T) {
	payload := testutil.JPEG(t, 32, 32)
	var gotPath, gotAgent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(payload)
	}))
	defer srv.Close()

	s := NewHTTPSource(srv.URL+"/{width}/{height}", "bgkit-test", time.Second)
	data, err := s.Fetch(context.Background(), 1920, 1080)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data) != len(payload) {
		t.Errorf("expected %d bytes, got %d", len(payload), len(data))
	}
	if gotPath != "/1920/1080" {
		t.Errorf("unexpected request path: %s", gotPath)
	}
	if gotAgent != "bgkit-test" {
		t.Errorf("unexpected user agent: %s", gotAgent)
	}
}

func TestHTTPSource_Fetch_FollowsRedirect(t *testing.T) {
	payload := testutil.JPEG(t, 32, 32)

	mux := http.NewServeMux()
	mux.HandleFunc("/1920/1080", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/id/7/1920/1080.jpg", http.StatusFound)
	})
	mux.HandleFunc("/id/7/1920/1080.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewHTTPSource(srv.URL+"/{width}/{height}", "", time.Second)
	data, err := s.Fetch(context.Background(), 1920, 1080)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != len(payload) {
		t.Errorf("expected redirected payload, got %d bytes", len(data))
	}
}

func TestHTTPSource_Fetch_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewHTTPSource(srv.URL+"/{width}/{height}", "", time.Second)
	_, err := s.Fetch(context.Background(), 1920, 1080)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", statusErr.StatusCode)
	}
}

func TestHTTPSource_Fetch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewHTTPSource(srv.URL+"/{width}/{height}", "", 5*time.Second)
	if _, err := s.Fetch(ctx, 1920, 1080); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestHTTPSource_Fetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := NewHTTPSource(url+"/{width}/{height}", "", time.Second)
	if _, err := s.Fetch(context.Background(), 1920, 1080); err == nil {
		t.Fatal("expected error for closed server")
	}
}
