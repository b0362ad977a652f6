package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection persists a slice of records as one JSON file on disk. Every
// mutation rewrites the whole snapshot; the last writer wins. Writes go
// through a temp file and rename, so readers never observe a partial file.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection creates a collection backed by the given file path.
func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Load reads the current snapshot. A missing file yields an empty slice.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Update applies fn to the current snapshot and persists the result. The
// lock is held across read and write, so concurrent updates within this
// process do not interleave.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return nil, err
	}
	updated, err := fn(items)
	if err != nil {
		return nil, err
	}
	if err := c.store(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", c.path, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", c.path, err)
	}
	return items, nil
}

func (c *Collection[T]) store(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.path, err)
	}
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", c.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write collection %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close collection %s: %w", c.path, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace collection %s: %w", c.path, err)
	}
	return nil
}
