package curriculum

import (
	"strings"

	"github.com/alexanderramin/erca/internal/domain"
)

// PrefixRules maps a sub-level key to the code prefixes its skills may
// carry. A key may accept more than one prefix.
type PrefixRules map[string][]string

// DefaultPrefixRules builds the rules for an area code such as "M"
// (mathematics): "M.1." for preparatory up to "M.4." or "M.5." for upper.
// The advanced track is unfiltered unless bguPrefixes is non-empty.
func DefaultPrefixRules(areaCode string, bguPrefixes ...string) PrefixRules {
	p := func(n string) string { return areaCode + "." + n + "." }
	rules := PrefixRules{
		domain.SubLevelPreparatoria: {p("1")},
		domain.SubLevelElemental:    {p("2")},
		domain.SubLevelMedia:        {p("3")},
		domain.SubLevelSuperior:     {p("4"), p("5")},
	}
	var bgu []string
	for _, prefix := range bguPrefixes {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			bgu = append(bgu, prefix)
		}
	}
	if len(bgu) > 0 {
		rules[domain.SubLevelBGU] = bgu
	}
	return rules
}

// Taxonomy filters skill lists by sub-level code prefix. It must be applied
// on every read of "the skills of sub-level X": source files are known to
// list skills under the wrong sub-level.
type Taxonomy struct {
	rules PrefixRules
}

// NewTaxonomy copies rules into a Taxonomy.
func NewTaxonomy(rules PrefixRules) *Taxonomy {
	cp := make(PrefixRules, len(rules))
	for k, v := range rules {
		cp[k] = append([]string(nil), v...)
	}
	return &Taxonomy{rules: cp}
}

// Prefixes returns the prefixes configured for key and whether a rule exists.
func (t *Taxonomy) Prefixes(key string) ([]string, bool) {
	v, ok := t.rules[key]
	if !ok || len(v) == 0 {
		return nil, false
	}
	return append([]string(nil), v...), true
}

// Allows reports whether a skill code belongs under key.
func (t *Taxonomy) Allows(key, code string) bool {
	prefixes := t.rules[key]
	return len(prefixes) == 0 || hasAnyPrefix(code, prefixes)
}

// FilterSkills keeps the skills whose trimmed code starts with one of key's
// prefixes, preserving order. Keys without a rule pass skills through
// unchanged.
func (t *Taxonomy) FilterSkills(key string, skills []domain.Skill) []domain.Skill {
	if _, ok := t.Prefixes(key); !ok {
		return skills
	}
	out := make([]domain.Skill, 0, len(skills))
	for _, s := range skills {
		if t.Allows(key, s.Code) {
			out = append(out, s)
		}
	}
	return out
}

// HasData reports whether key holds an objective or a skill that passes the
// filter. A sub-level listing only misfiled skills has no data.
func (t *Taxonomy) HasData(cat *domain.Catalog, key string) bool {
	if cat == nil {
		return false
	}
	sl, ok := cat.SubLevel(key)
	if !ok {
		return false
	}
	return len(sl.Objectives) > 0 || len(t.FilterSkills(key, sl.Skills)) > 0
}

// AvailableKey decides which sub-level a plan should draw from. key wins
// when it has data; otherwise the first sub-level with data in catalog
// order; otherwise key itself, which renders as missing.
func (t *Taxonomy) AvailableKey(cat *domain.Catalog, key string) string {
	if cat == nil || t.HasData(cat, key) {
		return key
	}
	for _, k := range cat.Keys() {
		if t.HasData(cat, k) {
			return k
		}
	}
	return key
}

func hasAnyPrefix(code string, prefixes []string) bool {
	code = strings.TrimSpace(code)
	for _, prefix := range prefixes {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}
