// Package catalog provides read access to the movie/show catalog the recommender ranks.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/moviefy/internal/types"
)

// ErrCatalogNotFound indicates the catalog source does not exist.
var ErrCatalogNotFound = errors.New("catalog not found")

// Store loads a full catalog snapshot. Implementations must return rows in a stable order.
type Store interface {
	LoadCatalog(ctx context.Context) ([]types.CatalogItem, error)
}

// StaticStore serves a fixed in-memory catalog.
type StaticStore struct {
	Items []types.CatalogItem
}

// LoadCatalog returns a copy of the in-memory items.
func (s *StaticStore) LoadCatalog(_ context.Context) ([]types.CatalogItem, error) {
	out := make([]types.CatalogItem, len(s.Items))
	copy(out, s.Items)
	return out, nil
}

// FileStore reads the catalog from a JSON array on disk.
type FileStore struct {
	Path string
}

// NewFileStore creates a FileStore for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// LoadCatalog reads and decodes the catalog file on every call.
func (s *FileStore) LoadCatalog(_ context.Context) ([]types.CatalogItem, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, s.Path)
		}
		return nil, fmt.Errorf("failed to read catalog file %s: %w", s.Path, err)
	}
	return Decode(data)
}

// Decode parses a JSON catalog. Null text fields decode as empty strings.
// Items without an id are numbered by position, starting at 1.
func Decode(data []byte) ([]types.CatalogItem, error) {
	var items []types.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	for i := range items {
		if items[i].ID == 0 {
			items[i].ID = int64(i + 1)
		}
	}
	return items, nil
}
