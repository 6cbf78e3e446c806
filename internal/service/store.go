package service

import (
	"sync/atomic"

	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/importer"
)

// CatalogStore publishes the catalog plans are built from. Readers always
// get a complete catalog: a reload builds a new one and swaps the pointer.
type CatalogStore struct {
	current atomic.Pointer[domain.Catalog]
}

// NewCatalogStore returns a store serving initial, which may be nil until
// the first load.
func NewCatalogStore(initial *domain.Catalog) *CatalogStore {
	s := &CatalogStore{}
	if initial != nil {
		s.current.Store(initial)
	}
	return s
}

// Current returns the catalog in service. It is never nil; an unloaded
// store serves an empty baseline catalog.
func (s *CatalogStore) Current() *domain.Catalog {
	if c := s.current.Load(); c != nil {
		return c
	}
	return emptyCatalog
}

// Swap installs next and returns the previous catalog.
func (s *CatalogStore) Swap(next *domain.Catalog) *domain.Catalog {
	if next == nil {
		next = emptyCatalog
	}
	return s.current.Swap(next)
}

var emptyCatalog = importer.Normalize(nil)
