package repository

import (
	"context"

	"github.com/alexanderramin/erca/internal/domain"
)

// CatalogSourceRepo stores raw curriculum documents. At most one source is
// active at a time.
type CatalogSourceRepo interface {
	Create(ctx context.Context, s *domain.CatalogSource) error
	GetByName(ctx context.Context, name string) (*domain.CatalogSource, error)
	GetActive(ctx context.Context) (*domain.CatalogSource, error)
	// List returns sources ordered by import time without their raw bytes.
	List(ctx context.Context) ([]*domain.CatalogSource, error)
	SetActive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
