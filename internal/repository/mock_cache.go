package repository

import "context"

// MockCache is a map-backed Cache for tests.
type MockCache struct {
	Data map[string]string
}

// NewMockCache creates an empty MockCache.
func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

// Get returns the cached value for key and whether it was present.
func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

// Set stores the value under key.
func (m *MockCache) Set(_ context.Context, key string, value string) error {
	m.Data[key] = value
	return nil
}

// Delete removes the value stored under key.
func (m *MockCache) Delete(_ context.Context, key string) error {
	delete(m.Data, key)
	return nil
}
