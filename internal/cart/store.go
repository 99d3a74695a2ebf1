package cart

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// storageKey is the fixed key the item list is serialized under, matching the
// browser storefront's localStorage slot.
const storageKey = "cart"

// FileStore keeps the serialized cart in a single JSON file under dir. It is
// the durable-client-storage analog: load on startup, rewrite in full on
// every save.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, storageKey+".json")
}

// Load returns the saved items. A missing file is an empty cart; a corrupt
// file is reported so New can fall back to empty.
func (s *FileStore) Load() ([]Item, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileStore) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path(), b, 0644)
}

// MemStore is an in-memory Store for sessions that don't need durability.
type MemStore struct {
	items []Item
}

func (s *MemStore) Load() ([]Item, error) { return s.items, nil }

func (s *MemStore) Save(items []Item) error {
	s.items = make([]Item, len(items))
	copy(s.items, items)
	return nil
}
