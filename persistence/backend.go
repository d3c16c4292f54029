package persistence

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"
)

// Backend is a synchronous key/value store. LoadItem returns nil data for a
// key that was never saved.
type Backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// GdataBackend stores items in the user's app data directory.
type GdataBackend struct {
	m *gdata.Manager
}

// OpenGdata opens the on-disk store for appName.
func OpenGdata(appName string) (*GdataBackend, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open gdata %q: %w", appName, err)
	}
	return &GdataBackend{m: m}, nil
}

func (b *GdataBackend) LoadItem(key string) ([]byte, error) {
	return b.m.LoadItem(key)
}

func (b *GdataBackend) SaveItem(key string, data []byte) error {
	return b.m.SaveItem(key, data)
}

// MemoryBackend keeps items in memory. Used headless and in tests.
type MemoryBackend struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: make(map[string][]byte)}
}

func (b *MemoryBackend) LoadItem(key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (b *MemoryBackend) SaveItem(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[key] = append([]byte(nil), data...)
	return nil
}
