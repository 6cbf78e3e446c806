package contract

import (
	"strings"

	"github.com/alexanderramin/erca/internal/domain"
)

// Allocation is a fresh split of a lesson duration.
type Allocation struct {
	Requested int                    `json:"requested"`
	Total     int                    `json:"total"`
	Phases    domain.PhaseAllocation `json:"phases"`
}

// PlanRequest is the body of a plan request. Level and duration fall back
// to general basic education and the configured default when omitted.
type PlanRequest struct {
	domain.Selection
}

// NewPlanRequest returns a request carrying the planner's form defaults.
func NewPlanRequest() PlanRequest {
	return PlanRequest{Selection: domain.Selection{
		Subject: "Matemática",
		Level:   domain.LevelEGB,
		Grade:   "7",
	}}
}

// Normalize trims free-text fields and maps unknown levels onto EGB.
func (r PlanRequest) Normalize() domain.Selection {
	sel := r.Selection
	sel.Level = domain.ParseLevel(string(sel.Level))
	for _, f := range []*string{&sel.Subject, &sel.Grade, &sel.Unit, &sel.Topic, &sel.SubLevelKey, &sel.SkillCode} {
		*f = strings.TrimSpace(*f)
	}
	if sel.Phases != nil {
		p := *sel.Phases
		sel.Phases = &p
	}
	return sel
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}
