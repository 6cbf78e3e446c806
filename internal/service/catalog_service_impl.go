package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/erca/internal/db"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/importer"
	"github.com/alexanderramin/erca/internal/repository"
	"github.com/alexanderramin/erca/internal/seed"
	"github.com/google/uuid"
)

type catalogService struct {
	sources  repository.CatalogSourceRepo
	uow      db.UnitOfWork
	store    *CatalogStore
	observer UseCaseObserver
}

func NewCatalogService(
	sources repository.CatalogSourceRepo,
	uow db.UnitOfWork,
	store *CatalogStore,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		sources:  sources,
		uow:      uow,
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Current() *domain.Catalog {
	return s.store.Current()
}

func (s *catalogService) Import(ctx context.Context, filePath, name string, activate bool) (*ImportResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading curriculum file: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}
	return s.ImportBytes(ctx, name, domain.FormatFromPath(filePath), data, activate)
}

func (s *catalogService) ImportBytes(ctx context.Context, name string, format domain.SourceFormat, data []byte, activate bool) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": name, "activate": activate}
	defer func() { observe(ctx, s.observer, "import-catalog", startedAt, fields, &err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("catalog source name must not be empty")
	}
	raw, err := importer.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing curriculum %q: %w", name, err)
	}
	cat, report := importer.NormalizeWithReport(raw)
	fields["skills"] = report.Skills
	fields["discarded"] = report.Discarded

	src := &domain.CatalogSource{
		ID:         uuid.New().String(),
		Name:       name,
		Format:     format,
		Raw:        data,
		ImportedAt: startedAt,
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSources := repository.NewSQLiteCatalogSourceRepo(tx)
		if err := txSources.Create(ctx, src); err != nil {
			return err
		}
		if !activate {
			return nil
		}
		return txSources.SetActive(ctx, src.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("storing curriculum %q: %w", name, err)
	}

	if activate {
		src.Active = true
		s.store.Swap(cat)
	}
	return &ImportResult{Source: src, Report: report, Activated: activate}, nil
}

func (s *catalogService) List(ctx context.Context) ([]*domain.CatalogSource, error) {
	return s.sources.List(ctx)
}

func (s *catalogService) Activate(ctx context.Context, name string) (result *ActivationResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": name}
	defer func() { observe(ctx, s.observer, "activate-catalog", startedAt, fields, &err) }()

	var (
		cat    *domain.Catalog
		report importer.Report
	)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSources := repository.NewSQLiteCatalogSourceRepo(tx)
		src, err := txSources.GetByName(ctx, name)
		if err != nil {
			return err
		}
		raw, err := importer.Parse(src.Raw)
		if err != nil {
			return fmt.Errorf("parsing stored curriculum %q: %w", name, err)
		}
		cat, report = importer.NormalizeWithReport(raw)
		return txSources.SetActive(ctx, src.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("activating curriculum %q: %w", name, err)
	}

	s.store.Swap(cat)
	fields["skills"] = report.Skills
	return &ActivationResult{SourceName: name, Report: report}, nil
}

func (s *catalogService) Remove(ctx context.Context, name string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": name}
	defer func() { observe(ctx, s.observer, "remove-catalog", startedAt, fields, &err) }()

	src, err := s.sources.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("removing curriculum %q: %w", name, err)
	}
	if err = s.sources.Delete(ctx, src.ID); err != nil {
		return fmt.Errorf("removing curriculum %q: %w", name, err)
	}
	fields["was_active"] = src.Active
	if src.Active {
		_, err = s.Reload(ctx)
	}
	return err
}

func (s *catalogService) Reload(ctx context.Context) (result *ActivationResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "reload-catalog", startedAt, fields, &err) }()

	name, data := seed.Name, seed.MatematicaEGB2016
	src, err := s.sources.GetActive(ctx)
	switch {
	case err == nil:
		name, data = src.Name, src.Raw
	case errors.Is(err, repository.ErrNotFound):
		err = nil
	default:
		return nil, fmt.Errorf("loading active curriculum: %w", err)
	}
	fields["source"] = name

	raw, err := importer.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing curriculum %q: %w", name, err)
	}
	cat, report := importer.NormalizeWithReport(raw)
	s.store.Swap(cat)
	fields["skills"] = report.Skills
	return &ActivationResult{SourceName: name, Report: report}, nil
}
