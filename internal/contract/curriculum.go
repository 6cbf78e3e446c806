// Package contract holds the request and response shapes shared by the
// services, the terminal formatter and the HTTP API.
package contract

import "github.com/alexanderramin/erca/internal/domain"

// Resolution is the sub-level a level and grade map to, before and after
// the availability fallback.
type Resolution struct {
	Level        domain.Level `json:"level"`
	Grade        string       `json:"grade"`
	ResolvedKey  string       `json:"resolved_key"`
	AvailableKey string       `json:"available_key"`
	Available    bool         `json:"available"`
}

// FellBack reports whether the plan draws from a different sub-level than
// the grade resolved to.
func (r Resolution) FellBack() bool {
	return r.ResolvedKey != r.AvailableKey
}

// SkillListing is the filtered skill list of one sub-level.
type SkillListing struct {
	SubLevelKey string         `json:"sub_level_key"`
	Skills      []domain.Skill `json:"skills"`
	// Rejected counts skills listed under the sub-level whose code does not
	// belong to it.
	Rejected int `json:"rejected"`
}

// ScoredSkill is a candidate skill with its topic relevance.
type ScoredSkill struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Score       int    `json:"score"`
	Best        bool   `json:"best"`
}

// SubLevelSummary counts what one sub-level of the served catalog holds.
type SubLevelSummary struct {
	Key        string `json:"key"`
	Objectives int    `json:"objectives"`
	Skills     int    `json:"skills"`
	Rejected   int    `json:"rejected"`
	Available  bool   `json:"available"`
}

// CatalogSummary describes the served catalog.
type CatalogSummary struct {
	Area      string            `json:"area"`
	Source    string            `json:"source"`
	SubLevels []SubLevelSummary `json:"sub_levels"`
}
