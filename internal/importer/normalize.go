package importer

import (
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/textnorm"
)

const (
	DefaultArea   = "Matemática"
	DefaultSource = "MINEDUC Ecuador – Currículo 2016"
)

// Report summarizes what normalization kept, dropped and repaired.
type Report struct {
	SubLevels  int
	Objectives int
	Skills     int
	Indicators int

	// Discarded counts entries whose code and description were both empty.
	Discarded int
	// Coerced counts present fields that were not strings.
	Coerced int
	// MergedKeys lists canonical keys that more than one raw key collapsed into.
	MergedKeys []string
	// DroppedKeys counts sub-levels whose key was blank.
	DroppedKeys int
}

// Normalize converts a raw catalog into the canonical Catalog. It never
// fails: the worst case is a catalog of empty baseline sub-levels.
func Normalize(raw *RawCatalog) *domain.Catalog {
	cat, _ := NormalizeWithReport(raw)
	return cat
}

// NormalizeWithReport is Normalize plus a summary of the repairs applied.
func NormalizeWithReport(raw *RawCatalog) (*domain.Catalog, Report) {
	var rep Report
	if raw == nil {
		raw = &RawCatalog{}
	}
	rep.Coerced += countCoerced(raw.Area) + countCoerced(raw.Source)

	subLevels := make([]domain.SubLevelCurriculum, 0, len(domain.BaselineSubLevels)+len(raw.SubLevels))
	index := make(map[string]int, cap(subLevels))
	for _, key := range domain.BaselineSubLevels {
		index[key] = len(subLevels)
		subLevels = append(subLevels, domain.SubLevelCurriculum{Name: key})
	}

	seen := make(map[string]bool, len(raw.SubLevels))
	merged := make(map[string]bool)
	for _, rs := range raw.SubLevels {
		key := textnorm.Key(rs.Key)
		if key == "" {
			rep.DroppedKeys++
			continue
		}
		if seen[key] && !merged[key] {
			merged[key] = true
			rep.MergedKeys = append(rep.MergedKeys, key)
		}
		seen[key] = true

		i, ok := index[key]
		if !ok {
			i = len(subLevels)
			index[key] = i
			subLevels = append(subLevels, domain.SubLevelCurriculum{Name: key})
		}
		sl := &subLevels[i]
		sl.Objectives = append(sl.Objectives, normalizeObjectives(rs.Objectives, &rep)...)
		sl.Skills = append(sl.Skills, normalizeSkills(rs.Skills, &rep)...)
	}

	for _, sl := range subLevels {
		rep.Objectives += len(sl.Objectives)
		rep.Skills += len(sl.Skills)
		for _, s := range sl.Skills {
			rep.Indicators += len(s.Indicators)
		}
	}
	rep.SubLevels = len(subLevels)

	area := domain.CoalesceStr(raw.Area.Text(), DefaultArea)
	source := domain.CoalesceStr(raw.Source.Text(), DefaultSource)
	return domain.NewCatalog(area, source, subLevels), rep
}

func normalizeObjectives(in []RawEntry, rep *Report) []domain.Objective {
	var out []domain.Objective
	for _, e := range in {
		code, desc, ok := normalizeEntry(e, rep)
		if !ok {
			continue
		}
		out = append(out, domain.Objective{Code: code, Description: desc})
	}
	return out
}

func normalizeSkills(in []RawEntry, rep *Report) []domain.Skill {
	var out []domain.Skill
	for _, e := range in {
		code, desc, ok := normalizeEntry(e, rep)
		if !ok {
			continue
		}
		s := domain.Skill{Code: code, Description: desc, Indicators: []domain.Indicator{}}
		for _, ie := range e.Indicators {
			icode, idesc, ok := normalizeEntry(ie, rep)
			if !ok {
				continue
			}
			s.Indicators = append(s.Indicators, domain.Indicator{Code: icode, Description: idesc})
		}
		out = append(out, s)
	}
	return out
}

// normalizeEntry trims both fields and reports whether the entry survives:
// it does unless code and description are both empty.
func normalizeEntry(e RawEntry, rep *Report) (string, string, bool) {
	rep.Coerced += countCoerced(e.Code) + countCoerced(e.Description)
	code, desc := e.Code.Text(), e.Description.Text()
	if code == "" && desc == "" {
		rep.Discarded++
		return "", "", false
	}
	return code, desc, true
}

func countCoerced(f Field) int {
	if f.coerced() {
		return 1
	}
	return 0
}
