package mocks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MockImageSource is a mock implementation of the ImageSource interface for testing
type MockImageSource struct {
	mu      sync.Mutex
	payload []byte
	// failures maps a 1-based call number to the error returned for that call
	failures map[int]error
	calls    int
	sizes    [][2]int
}

// NewMockImageSource creates a source returning payload for every call
func NewMockImageSource(payload []byte) *MockImageSource {
	return &MockImageSource{
		payload:  payload,
		failures: make(map[int]error),
	}
}

// FailOn makes the n-th call (1-based) return err
func (m *MockImageSource) FailOn(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[n] = err
}

// Fetch returns the configured payload or a scheduled failure
func (m *MockImageSource) Fetch(ctx context.Context, width, height int) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.sizes = append(m.sizes, [2]int{width, height})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.failures[m.calls]; ok {
		return nil, err
	}

	out := make([]byte, len(m.payload))
	copy(out, m.payload)
	return out, nil
}

// Calls returns the number of Fetch calls
func (m *MockImageSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Sizes returns the dimensions requested by each call
func (m *MockImageSource) Sizes() [][2]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][2]int(nil), m.sizes...)
}

// --- MockImageStore ---

// MockImageStore is an in-memory implementation of the ImageStore interface
type MockImageStore struct {
	mu       sync.Mutex
	dir      string
	files    map[string][]byte
	writes   map[string]int
	failures map[string]error
	truncate map[string]int
}

// NewMockImageStore creates a new mock image store
func NewMockImageStore(dir string) *MockImageStore {
	return &MockImageStore{
		dir:      dir,
		files:    make(map[string][]byte),
		writes:   make(map[string]int),
		failures: make(map[string]error),
		truncate: make(map[string]int),
	}
}

// Truncate makes writes of filename silently keep only the first n bytes
func (m *MockImageStore) Truncate(filename string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.truncate[filename] = n
}

// FailWrite makes writes of filename return err
func (m *MockImageStore) FailWrite(filename string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[filename] = err
}

// Write stores data in memory
func (m *MockImageStore) Write(ctx context.Context, filename string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failures[filename]; ok {
		return err
	}
	if n, ok := m.truncate[filename]; ok && n < len(data) {
		data = data[:n]
	}
	m.files[filename] = append([]byte(nil), data...)
	m.writes[filename]++
	return nil
}

// Stat returns the size of a stored file
func (m *MockImageStore) Stat(ctx context.Context, filename string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[filename]
	if !ok {
		return 0, fmt.Errorf("%s: %w", filename, os.ErrNotExist)
	}
	return int64(len(data)), nil
}

// Path returns where filename would live
func (m *MockImageStore) Path(filename string) string {
	return filepath.Join(m.dir, filename)
}

// Get returns stored data
func (m *MockImageStore) Get(filename string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filename]
	return data, ok
}

// Files returns the number of stored files
func (m *MockImageStore) Files() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

// Writes returns how many times filename was written
func (m *MockImageStore) Writes(filename string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[filename]
}

// ErrMockNetwork is a canned transport error
var ErrMockNetwork = errors.New("mock network failure")
