package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/erca/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatPhases renders the split as colored "E=10 | R=10 | C=10 | A=10".
func FormatPhases(p domain.PhaseAllocation) string {
	parts := make([]string, 0, len(domain.PhaseOrder))
	for _, phase := range domain.PhaseOrder {
		label := fmt.Sprintf("%s=%d", phase, p.Minutes(phase))
		parts = append(parts, phaseStyles[phase].Render(label))
	}
	return strings.Join(parts, Dim(" | "))
}

// PhaseBar draws one proportional bar per phase, width cells for the total.
func PhaseBar(p domain.PhaseAllocation, width int) string {
	total := p.Sum()
	if total <= 0 || width <= 0 {
		return ""
	}
	var b strings.Builder
	for _, phase := range domain.PhaseOrder {
		n := p.Minutes(phase) * width / total
		b.WriteString(phaseStyles[phase].Render(strings.Repeat("█", max(n, 0))))
	}
	return b.String()
}

// OrDash returns s, or a dimmed "--" when s is blank.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return StyleDim.Render("--")
	}
	return s
}
