package helper

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

const memoryScheme = "mem://"

// MemoryStore: ObjectStore in-process untuk test & STORAGE_DRIVER=memory.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte

	// PutErr / DeleteErr dipakai test untuk mensimulasikan kegagalan storage.
	PutErr    error
	DeleteErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: map[string][]byte{}}
}

func (m *MemoryStore) PutObject(ctx context.Context, key string, r io.Reader, contentType string) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *MemoryStore) DeleteObject(ctx context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *MemoryStore) PublicURL(key string) string { return memoryScheme + key }

func (m *MemoryStore) KeyFromPublicURL(publicURL string) (string, error) {
	if !strings.HasPrefix(publicURL, memoryScheme) {
		return "", fmt.Errorf("not a memory url: %s", publicURL)
	}
	return strings.TrimPrefix(publicURL, memoryScheme), nil
}

// Get mengembalikan isi object berdasarkan public URL.
func (m *MemoryStore) Get(publicURL string) ([]byte, bool) {
	key, err := m.KeyFromPublicURL(publicURL)
	if err != nil {
		return nil, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	return data, ok
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
