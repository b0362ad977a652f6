package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollectionLoadMissingFile(t *testing.T) {
	c := NewCollection[record](filepath.Join(t.TempDir(), "records.json"))

	items, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty collection, got %d items", len(items))
	}
}

func TestCollectionUpdateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	c := NewCollection[record](path)

	_, err := c.Update(context.Background(), func(items []record) ([]record, error) {
		return append(items, record{ID: "1", Name: "first"}), nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	// A fresh collection over the same path sees the persisted snapshot.
	again := NewCollection[record](path)
	items, err := again.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].Name != "first" {
		t.Fatalf("unexpected snapshot: %+v", items)
	}
}

func TestCollectionUpdateErrorDoesNotPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	c := NewCollection[record](path)

	if _, err := c.Update(context.Background(), func(items []record) ([]record, error) {
		return append(items, record{ID: "1"}), nil
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	wantErr := os.ErrInvalid
	_, err := c.Update(context.Background(), func(items []record) ([]record, error) {
		return nil, wantErr
	})
	if err == nil {
		t.Fatal("expected update error")
	}

	items, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("failed update must not change the snapshot, got %d items", len(items))
	}
}
