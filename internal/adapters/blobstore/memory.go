package blobstore

import (
	"context"
	"fmt"
	"io"
	"sync"

	"faunagram/internal/ports/blob"
)

// MemoryBucket guarda los objetos en memoria. Sirve para tests y dev.
// Seguro para uso concurrente.
type MemoryBucket struct {
	mu      sync.RWMutex
	name    string
	objects map[string][]byte
	types   map[string]string
}

func NewMemoryBucket(name string) *MemoryBucket {
	if name == "" {
		name = "faunagram"
	}
	return &MemoryBucket{
		name:    name,
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (b *MemoryBucket) Put(_ context.Context, key, contentType string, r io.Reader, size int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}
	if size >= 0 && int64(len(data)) != size {
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", size, len(data))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[key] = data
	b.types[key] = contentType
	return nil
}

func (b *MemoryBucket) PublicURL(key string) string {
	return fmt.Sprintf("memory://%s/%s", b.name, key)
}

// Get expone el contenido guardado; solo lo usan los tests.
func (b *MemoryBucket) Get(key string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.objects[key]
	return data, ok
}

// Len devuelve la cantidad de objetos guardados.
func (b *MemoryBucket) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.objects)
}

var _ blob.Bucket = (*MemoryBucket)(nil)
