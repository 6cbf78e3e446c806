package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/erca/internal/config"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/importer"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func mustCatalog(t *testing.T, doc string) *domain.Catalog {
	t.Helper()
	raw, err := importer.Parse([]byte(doc))
	require.NoError(t, err)
	return importer.Normalize(raw)
}

func newTestPlanService(t *testing.T, doc string, observers ...UseCaseObserver) (PlanService, *CatalogStore) {
	t.Helper()
	var cat *domain.Catalog
	if doc != "" {
		cat = mustCatalog(t, doc)
	}
	store := NewCatalogStore(cat)
	return NewPlanService(store, NewEngine(config.Default()), observers...), store
}
