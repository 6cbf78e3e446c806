package service

import (
	"context"
	"time"

	"github.com/alexanderramin/erca/internal/config"
	"github.com/alexanderramin/erca/internal/contract"
	"github.com/alexanderramin/erca/internal/curriculum"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/matcher"
	"github.com/alexanderramin/erca/internal/scheduler"
	"github.com/alexanderramin/erca/internal/textnorm"
)

// Engine bundles the configured core components a plan is built with.
type Engine struct {
	Resolver        *curriculum.Resolver
	Taxonomy        *curriculum.Taxonomy
	Matcher         *matcher.Matcher
	Allocator       *scheduler.Allocator
	DefaultDuration int
}

// NewEngine builds the core components from cfg.
func NewEngine(cfg config.Config) Engine {
	return Engine{
		Resolver:        curriculum.DefaultResolver(),
		Taxonomy:        cfg.Taxonomy(),
		Matcher:         matcher.New(nil),
		Allocator:       scheduler.NewAllocator(cfg.Bounds()),
		DefaultDuration: cfg.DefaultDuration,
	}
}

// CatalogReader is the read side of a CatalogStore.
type CatalogReader interface {
	Current() *domain.Catalog
}

type planService struct {
	catalogs CatalogReader
	engine   Engine
	observer UseCaseObserver
}

func NewPlanService(catalogs CatalogReader, engine Engine, observers ...UseCaseObserver) PlanService {
	return &planService{
		catalogs: catalogs,
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Overview() contract.CatalogSummary {
	cat := s.catalogs.Current()
	summary := contract.CatalogSummary{
		Area:      cat.Area(),
		Source:    cat.Source(),
		SubLevels: make([]contract.SubLevelSummary, 0, cat.Len()),
	}
	for _, key := range cat.Keys() {
		sl, _ := cat.SubLevel(key)
		listing := s.skills(cat, key)
		summary.SubLevels = append(summary.SubLevels, contract.SubLevelSummary{
			Key:        key,
			Objectives: len(sl.Objectives),
			Skills:     len(listing.Skills),
			Rejected:   listing.Rejected,
			Available:  s.engine.Taxonomy.HasData(cat, key),
		})
	}
	return summary
}

func (s *planService) Resolve(level domain.Level, grade string) contract.Resolution {
	return s.resolve(s.catalogs.Current(), level, grade, "")
}

func (s *planService) resolve(cat *domain.Catalog, level domain.Level, grade, override string) contract.Resolution {
	resolved := textnorm.Key(override)
	if resolved == "" {
		resolved = s.engine.Resolver.ResolveSubLevel(level, grade)
	}
	key := s.engine.Taxonomy.AvailableKey(cat, resolved)
	return contract.Resolution{
		Level:        level,
		Grade:        grade,
		ResolvedKey:  resolved,
		AvailableKey: key,
		Available:    s.engine.Taxonomy.HasData(cat, key),
	}
}

func (s *planService) Skills(subLevelKey string) contract.SkillListing {
	return s.skills(s.catalogs.Current(), textnorm.Key(subLevelKey))
}

func (s *planService) skills(cat *domain.Catalog, key string) contract.SkillListing {
	all := cat.Skills(key)
	kept := s.engine.Taxonomy.FilterSkills(key, all)
	if kept == nil {
		kept = []domain.Skill{}
	}
	return contract.SkillListing{SubLevelKey: key, Skills: kept, Rejected: len(all) - len(kept)}
}

// Match scores the filtered skills of a sub-level against topic, keeping
// catalog order and flagging the one a plan would pick.
func (s *planService) Match(subLevelKey, topic string) []contract.ScoredSkill {
	listing := s.Skills(subLevelKey)
	ranked := s.engine.Matcher.Rank(listing.Skills, topic)
	best := matcher.BestIndex(ranked)
	out := make([]contract.ScoredSkill, 0, len(ranked))
	for i, sc := range ranked {
		out = append(out, contract.ScoredSkill{
			Code:        sc.Skill.Code,
			Description: sc.Skill.Description,
			Score:       sc.Score,
			Best:        i == best,
		})
	}
	return out
}

func (s *planService) Allocate(total int) contract.Allocation {
	return contract.Allocation{
		Requested: total,
		Total:     s.engine.Allocator.Bounds().Clamp(total),
		Phases:    s.engine.Allocator.Allocate(total),
	}
}

// Build resolves a selection against the current catalog. It never fails:
// missing curriculum pieces come back nil or empty for the renderer to mark.
func (s *planService) Build(ctx context.Context, sel domain.Selection) *domain.LessonPlan {
	startedAt := time.Now().UTC()
	cat := s.catalogs.Current()

	level := sel.Level
	if level == "" {
		level = domain.LevelEGB
	}
	res := s.resolve(cat, level, sel.Grade, sel.SubLevelKey)
	listing := s.skills(cat, res.AvailableKey)

	plan := &domain.LessonPlan{
		Subject:     sel.Subject,
		GradeLabel:  domain.Selection{Level: level, Grade: sel.Grade}.GradeLabel(),
		Unit:        sel.Unit,
		Topic:       sel.Topic,
		ResolvedKey: res.ResolvedKey,
		SubLevelKey: res.AvailableKey,
		Indicators:  []domain.Indicator{},
		Candidates:  listing.Skills,
	}

	skill, found := curriculum.FindSkill(listing.Skills, sel.SkillCode)
	if !found {
		skill, found = s.engine.Matcher.BestMatch(listing.Skills, sel.Topic)
	}
	if found {
		plan.Skill = &skill
		plan.Indicators = append(plan.Indicators, skill.Indicators...)
	}
	if objectives := cat.Objectives(res.AvailableKey); len(objectives) > 0 {
		plan.Objective = &objectives[0]
	}

	total := sel.DurationTotal
	if total == 0 {
		total = s.engine.DefaultDuration
	}
	plan.DurationTotal = s.engine.Allocator.Bounds().Clamp(total)
	if sel.Phases != nil {
		plan.Phases = *sel.Phases
		plan.ManualPhases = true
	} else {
		plan.Phases = s.engine.Allocator.Allocate(total)
	}
	plan.PhasesBalanced = scheduler.ValidateAllocation(plan.Phases, plan.DurationTotal)

	fields := map[string]any{
		"sub_level": plan.SubLevelKey,
		"balanced":  plan.PhasesBalanced,
	}
	if plan.Skill != nil {
		fields["skill"] = plan.Skill.Code
	}
	observe(ctx, s.observer, "build-plan", startedAt, fields, nil)
	return plan
}
