package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Persister mirrors a store's collection to a backing medium. Load returns
// (nil, nil) when the medium holds no data yet.
type Persister[T any] interface {
	Load() ([]T, error)
	Save(records []T) error
}

// MemoryPersister keeps everything in process memory; Save is a no-op.
type MemoryPersister[T any] struct{}

func NewMemoryPersister[T any]() *MemoryPersister[T] {
	return &MemoryPersister[T]{}
}

func (p *MemoryPersister[T]) Load() ([]T, error) { return nil, nil }

func (p *MemoryPersister[T]) Save(records []T) error { return nil }

// FilePersister rewrites a single JSON file wholesale on every Save. Not
// crash-safe; all records must fit in memory.
type FilePersister[T any] struct {
	path string
}

func NewFilePersister[T any](path string) *FilePersister[T] {
	return &FilePersister[T]{path: path}
}

func (p *FilePersister[T]) Load() ([]T, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *FilePersister[T]) Save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}
