package service

import (
	"context"

	"github.com/alexanderramin/erca/internal/contract"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/importer"
)

// ImportResult holds the outcome of a curriculum import.
type ImportResult struct {
	Source    *domain.CatalogSource
	Report    importer.Report
	Activated bool
}

// ActivationResult describes the catalog now being served.
type ActivationResult struct {
	SourceName string
	Report     importer.Report
}

type CatalogService interface {
	Import(ctx context.Context, filePath, name string, activate bool) (*ImportResult, error)
	ImportBytes(ctx context.Context, name string, format domain.SourceFormat, data []byte, activate bool) (*ImportResult, error)
	List(ctx context.Context) ([]*domain.CatalogSource, error)
	Activate(ctx context.Context, name string) (*ActivationResult, error)
	Remove(ctx context.Context, name string) error
	// Reload rebuilds the served catalog from the active source, or from the
	// built-in curriculum when none is active.
	Reload(ctx context.Context) (*ActivationResult, error)
	Current() *domain.Catalog
}

type PlanService interface {
	Overview() contract.CatalogSummary
	Resolve(level domain.Level, grade string) contract.Resolution
	// Skills lists the skills of a sub-level after the taxonomy filter.
	Skills(subLevelKey string) contract.SkillListing
	Match(subLevelKey, topic string) []contract.ScoredSkill
	Allocate(total int) contract.Allocation
	Build(ctx context.Context, sel domain.Selection) *domain.LessonPlan
}
