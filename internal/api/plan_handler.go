package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexanderramin/erca/internal/cli/formatter"
	"github.com/alexanderramin/erca/internal/contract"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/service"
	"github.com/alexanderramin/erca/internal/textnorm"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// PlanHandler serves curriculum lookups and plan building.
type PlanHandler struct {
	plans    service.PlanService
	catalogs service.CatalogService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(plans service.PlanService, catalogs service.CatalogService) *PlanHandler {
	return &PlanHandler{plans: plans, catalogs: catalogs}
}

// Register adds the curriculum and plan routes to r.
func (h *PlanHandler) Register(r chi.Router) {
	r.Get("/catalog", h.GetCatalog)
	r.Get("/catalog/sublevels/{key}", h.GetSubLevel)
	r.Get("/sublevels/resolve", h.ResolveSubLevel)
	r.Get("/skills", h.ListSkills)
	r.Get("/allocation", h.GetAllocation)

	r.Post("/plans", h.BuildPlan)
	r.Post("/plans/render", h.RenderPlan)
}

// SubLevelResponse is the content of one sub-level.
type SubLevelResponse struct {
	contract.SkillListing
	Objectives []domain.Objective `json:"objectives"`
}

// SkillsResponse lists filtered skills, scored when a topic was given.
type SkillsResponse struct {
	contract.SkillListing
	Matches []contract.ScoredSkill `json:"matches,omitempty"`
}

// GetCatalog summarizes the served catalog.
func (h *PlanHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.plans.Overview())
}

// GetSubLevel returns the objectives and filtered skills of one sub-level.
func (h *PlanHandler) GetSubLevel(w http.ResponseWriter, r *http.Request) {
	key := textnorm.Key(chi.URLParam(r, "key"))
	cat := h.catalogs.Current()
	if !cat.Has(key) {
		writeError(w, r, http.StatusNotFound, errors.New("sub-level not in catalog: "+key))
		return
	}
	objectives := cat.Objectives(key)
	if objectives == nil {
		objectives = []domain.Objective{}
	}
	render.JSON(w, r, SubLevelResponse{SkillListing: h.plans.Skills(key), Objectives: objectives})
}

// ResolveSubLevel maps ?level=&grade= onto a sub-level.
func (h *PlanHandler) ResolveSubLevel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	render.JSON(w, r, h.plans.Resolve(domain.ParseLevel(q.Get("level")), q.Get("grade")))
}

// ListSkills returns the skills of ?sublevel=, or of the sub-level
// ?level=&grade= resolves to. With ?topic= the skills are scored.
func (h *PlanHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := q.Get("sublevel")
	if strings.TrimSpace(key) == "" {
		key = h.plans.Resolve(domain.ParseLevel(q.Get("level")), q.Get("grade")).AvailableKey
	}
	resp := SkillsResponse{SkillListing: h.plans.Skills(key)}
	if topic := q.Get("topic"); strings.TrimSpace(topic) != "" {
		resp.Matches = h.plans.Match(key, topic)
	}
	render.JSON(w, r, resp)
}

// GetAllocation splits ?total= minutes across the phases.
func (h *PlanHandler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	total, err := strconv.Atoi(r.URL.Query().Get("total"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, errors.New("total must be a whole number of minutes"))
		return
	}
	render.JSON(w, r, h.plans.Allocate(total))
}

// BuildPlan resolves a selection into a lesson plan.
func (h *PlanHandler) BuildPlan(w http.ResponseWriter, r *http.Request) {
	sel, ok := decodeSelection(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, h.plans.Build(r.Context(), sel))
}

// RenderPlan returns the plain-text plan document.
func (h *PlanHandler) RenderPlan(w http.ResponseWriter, r *http.Request) {
	sel, ok := decodeSelection(w, r)
	if !ok {
		return
	}
	render.PlainText(w, r, formatter.PlanText(h.plans.Build(r.Context(), sel)))
}

func decodeSelection(w http.ResponseWriter, r *http.Request) (domain.Selection, bool) {
	req := contract.PlanRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return domain.Selection{}, false
	}
	return req.Normalize(), true
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, contract.ErrorResponse{Error: err.Error()})
}
