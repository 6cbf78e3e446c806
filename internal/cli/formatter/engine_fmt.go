package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/erca/internal/contract"
)

// FormatResolution shows which sub-level a level and grade map to.
func FormatResolution(r contract.Resolution) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", Dim("Level/grade:"), Bold(string(r.Level)), OrDash(r.Grade))
	fmt.Fprintf(&b, "%s %s\n", Dim("Resolved:   "), r.ResolvedKey)
	fmt.Fprintf(&b, "%s %s\n", Dim("Using:      "), AvailabilityLabel(r.AvailableKey, r.Available))
	switch {
	case !r.Available:
		b.WriteString(StyleYellow.Render("The catalog has no data for any sub-level.") + "\n")
	case r.FellBack():
		b.WriteString(StyleYellow.Render(fmt.Sprintf("No data for %s; falling back to %s.", r.ResolvedKey, r.AvailableKey)) + "\n")
	}
	return b.String()
}

// FormatMatches renders topic scores, marking the skill a plan would pick.
func FormatMatches(topic string, scored []contract.ScoredSkill) string {
	if len(scored) == 0 {
		return Dim("No candidate skills.") + "\n"
	}
	rows := make([][]string, 0, len(scored))
	for _, s := range scored {
		mark := " "
		if s.Best {
			mark = StyleGreen.Render("▶")
		}
		rows = append(rows, []string{mark, strconv.Itoa(s.Score), StyleBlue.Render(OrDash(s.Code)), s.Description})
	}
	header := fmt.Sprintf("%s %q\n\n", Dim("Topic:"), topic)
	return header + RenderTable([]string{"", "SCORE", "CODE", "SKILL"}, rows)
}

// FormatAllocation renders a fresh phase split with a proportional bar.
func FormatAllocation(a contract.Allocation) string {
	var b strings.Builder
	if a.Requested != a.Total {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d min is out of range; using %d min.", a.Requested, a.Total)) + "\n")
	}
	fmt.Fprintf(&b, "%s %d min\n", Dim("Total:"), a.Total)
	fmt.Fprintf(&b, "%s\n", FormatPhases(a.Phases))
	fmt.Fprintf(&b, "%s\n", PhaseBar(a.Phases, 40))
	return b.String()
}
