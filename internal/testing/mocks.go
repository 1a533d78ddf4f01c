package testing

import (
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of the draft key-value store.
// It can be used across all tests that need to inject storage failures.
type MockStore struct {
	mock.Mock
}

// Get returns the mocked value for key.
func (m *MockStore) Get(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

// Set records a write of value under key.
func (m *MockStore) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

// Remove records a delete of key.
func (m *MockStore) Remove(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// Close records the store being closed.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
