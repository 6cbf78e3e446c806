package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/erca/internal/domain"
)

const (
	missingObjective  = "- (No disponible en data)"
	missingSkill      = "- (No seleccionada / no encontrada)"
	missingIndicators = "- (No disponibles en data)"
)

// PlanText renders a lesson plan as the plain ERCA + DUA document teachers
// paste into their own files. It carries no styling.
func PlanText(p *domain.LessonPlan) string {
	var b strings.Builder
	e, r, c, a := p.Phases.E, p.Phases.R, p.Phases.C, p.Phases.A

	b.WriteString("PLANIFICACIÓN MICROCURRICULAR (ERCA + DUA) — Currículo Ecuador 2016\n\n")

	b.WriteString("1) DATOS INFORMATIVOS\n")
	fmt.Fprintf(&b, "- Asignatura: %s\n", p.Subject)
	fmt.Fprintf(&b, "- Grado/Curso: %s\n", p.GradeLabel)
	fmt.Fprintf(&b, "- Unidad: %s\n", p.Unit)
	fmt.Fprintf(&b, "- Tema: %s\n", p.Topic)
	fmt.Fprintf(&b, "- Subnivel: %s\n\n", subLevelLine(p))

	b.WriteString("2) TIEMPO\n")
	fmt.Fprintf(&b, "- Duración total: %d minutos\n", p.DurationTotal)
	fmt.Fprintf(&b, "- Distribución ERCA: E=%d min | R=%d min | C=%d min | A=%d min\n", e, r, c, a)
	if !p.PhasesBalanced {
		fmt.Fprintf(&b, "- %s\n", MismatchNotice(p))
	}
	b.WriteString("\n")

	b.WriteString("3) OBJETIVO (Currículo 2016)\n")
	if p.Objective != nil {
		fmt.Fprintf(&b, "- %s: %s\n\n", p.Objective.Code, p.Objective.Description)
	} else {
		b.WriteString(missingObjective + "\n\n")
	}

	b.WriteString("4) DESTREZA CON CRITERIO DE DESEMPEÑO (Currículo 2016)\n")
	if p.Skill != nil {
		fmt.Fprintf(&b, "- %s: %s\n\n", p.Skill.Code, p.Skill.Description)
	} else {
		b.WriteString(missingSkill + "\n\n")
	}

	b.WriteString("5) INDICADORES DE EVALUACIÓN (Currículo 2016)\n")
	if len(p.Indicators) == 0 {
		b.WriteString(missingIndicators + "\n")
	}
	for _, ind := range p.Indicators {
		fmt.Fprintf(&b, "- %s: %s\n", ind.Code, ind.Description)
	}
	b.WriteString("\n")

	b.WriteString("6) ERCA (con apoyos DUA)\n")
	for _, phase := range domain.PhaseOrder {
		fmt.Fprintf(&b, "\n%s — %s (%d min)\n", phase, phase.Title(), p.Phases.Minutes(phase))
		for _, line := range phaseActivities(phase, p.Topic) {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return b.String()
}

// MismatchNotice explains a phase split that does not add up to the total.
func MismatchNotice(p *domain.LessonPlan) string {
	return fmt.Sprintf("Aviso: E+R+C+A suma %d min y no coincide con la duración total de %d min.",
		p.Phases.Sum(), p.DurationTotal)
}

func subLevelLine(p *domain.LessonPlan) string {
	if p.SubLevelKey == p.ResolvedKey {
		return p.SubLevelKey
	}
	return fmt.Sprintf("%s (sin datos para %s)", p.SubLevelKey, p.ResolvedKey)
}

func phaseActivities(phase domain.Phase, topic string) []string {
	switch phase {
	case domain.PhaseExperience:
		return []string{
			fmt.Sprintf("Actividad: Situación problema breve conectada con “%s” (contexto cercano del estudiante).", topic),
			"DUA (Representación): usar ejemplo visual (fracciones/recta/figuras) + explicación oral corta.",
			"DUA (Acción y expresión): permitir resolver con material concreto, dibujo o procedimiento escrito.",
			"DUA (Compromiso): elegir entre 2 opciones de ejercicio (fácil/retador).",
		}
	case domain.PhaseReflection:
		return []string{
			"Actividad: preguntas guía (¿qué observaste?, ¿qué estrategia funcionó?, ¿qué te costó?).",
			"DUA (Representación): organizador simple (tabla “equivalencias” / lista de pasos).",
			"DUA (Acción y expresión): compartir respuesta oral, en parejas o por escrito (según necesidad).",
			"DUA (Compromiso): retroalimentación breve y positiva + metas pequeñas.",
		}
	case domain.PhaseConceptualizing:
		return []string{
			"Actividad: construcción de la regla/idea clave del tema con ejemplos y contraejemplos.",
			"DUA (Representación): explicación + ejemplo en pizarra + mini guía impresa/digital.",
			"DUA (Acción y expresión): completar un ejemplo guiado y uno independiente.",
			"DUA (Compromiso): checklist de avance (lo entiendo / necesito apoyo / ya lo domino).",
		}
	case domain.PhaseApplication:
		return []string{
			"Actividad: práctica (individual/parejas) + mini reto contextualizado.",
			"DUA (Acción y expresión): permitir entregar respuestas en distintos formatos (procedimiento, esquema o explicación breve).",
			"Evaluación formativa: lista de cotejo (cumple procedimiento, verifica equivalencia, justifica).",
			"Cierre: 1 “ticket de salida” (1 ejercicio corto + 1 pregunta de reflexión).",
		}
	}
	return nil
}

// FormatPlan renders a plan for the terminal: a summary box, an optional
// mismatch warning, then the plain document.
func FormatPlan(p *domain.LessonPlan) string {
	var b strings.Builder

	summary := []string{
		fmt.Sprintf("%s  %s", Dim("Grado:"), Bold(p.GradeLabel)),
		fmt.Sprintf("%s  %s", Dim("Subnivel:"), AvailabilityLabel(p.SubLevelKey, p.SubLevelKey == p.ResolvedKey)),
		fmt.Sprintf("%s  %s", Dim("Destreza:"), skillLabel(p.Skill)),
		fmt.Sprintf("%s  %s", Dim("Tiempo:"), FormatPhases(p.Phases)),
	}
	b.WriteString(RenderBox("Planificación ERCA", strings.Join(summary, "\n")))
	b.WriteString("\n")
	if !p.PhasesBalanced {
		b.WriteString(StyleYellow.Render("⚠ "+MismatchNotice(p)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(PlanText(p))
	return b.String()
}

func skillLabel(s *domain.Skill) string {
	if s == nil {
		return StyleRed.Render("sin destreza")
	}
	return StyleGreen.Render(s.Code)
}
