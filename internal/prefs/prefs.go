// Package prefs holds the card's persisted display preference.
package prefs

import (
	"context"
	"sync"

	"github.com/lox/weathercard/internal/store"
)

// DarkModeKey is the key the light/dark preference is stored under.
const DarkModeKey = "wc_dark_mode"

// KV is the persistence capability the card is given at startup.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

var _ KV = (*store.Store)(nil)

// LoadDark reads the dark-mode flag. Only "1" means dark; a missing key or
// any other value is light.
func LoadDark(ctx context.Context, kv KV) (bool, error) {
	v, ok, err := kv.Get(ctx, DarkModeKey)
	if err != nil {
		return false, err
	}
	return ok && v == "1", nil
}

// SaveDark writes the dark-mode flag as "1" or "0".
func SaveDark(ctx context.Context, kv KV, dark bool) error {
	v := "0"
	if dark {
		v = "1"
	}
	return kv.Set(ctx, DarkModeKey, v)
}

// Memory is an in-process KV, used when no database is configured. The zero
// value is ready to use.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-process KV.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key and whether it exists.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}
