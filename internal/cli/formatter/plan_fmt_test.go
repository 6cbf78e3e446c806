package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/erca/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPlanText_MissingPiecesArePlaceholders(t *testing.T) {
	p := samplePlan()
	p.Objective = nil
	p.Skill = nil
	p.Indicators = nil

	out := PlanText(p)
	assert.Contains(t, out, "- (No disponible en data)")
	assert.Contains(t, out, "- (No seleccionada / no encontrada)")
	assert.Contains(t, out, "- (No disponibles en data)")
}

func TestPlanText_MismatchNotice(t *testing.T) {
	p := samplePlan()
	p.Phases = domain.PhaseAllocation{E: 5, R: 5, C: 5, A: 5}
	p.PhasesBalanced = false

	out := PlanText(p)
	assert.Contains(t, out, "E=5 min | R=5 min | C=5 min | A=5 min")
	assert.Contains(t, out, "suma 20 min y no coincide con la duración total de 40 min")
	assert.NotContains(t, PlanText(samplePlan()), "Aviso:")
}

func TestPlanText_ShowsFallbackSubLevel(t *testing.T) {
	p := samplePlan()
	p.ResolvedKey = domain.SubLevelBGU
	p.SubLevelKey = domain.SubLevelSuperior

	assert.Contains(t, PlanText(p), "- Subnivel: EGB Superior (sin datos para BGU)")
}

func TestPlanText_PhasesInOrder(t *testing.T) {
	out := PlanText(samplePlan())
	e := strings.Index(out, "E — EXPERIENCIA")
	r := strings.Index(out, "R — REFLEXIÓN")
	c := strings.Index(out, "C — CONCEPTUALIZACIÓN")
	a := strings.Index(out, "A — APLICACIÓN")
	assert.True(t, e > 0 && e < r && r < c && c < a)
}

func TestFormatPlan_WrapsPlainText(t *testing.T) {
	p := samplePlan()
	p.PhasesBalanced = false

	out := stripANSI(FormatPlan(p))
	assert.Contains(t, out, "PLANIFICACIÓN ERCA")
	assert.Contains(t, out, "M.3.2.6")
	assert.Contains(t, out, "⚠ Aviso:")
	assert.True(t, strings.HasSuffix(out, PlanText(p)))
}
