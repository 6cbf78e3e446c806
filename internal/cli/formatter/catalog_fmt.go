package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/erca/internal/contract"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/importer"
)

// FormatSourceList renders the imported curriculum sources.
func FormatSourceList(sources []*domain.CatalogSource) string {
	if len(sources) == 0 {
		return Dim("No curriculum imported. Plans use the built-in Ecuador 2016 catalog.") + "\n"
	}
	rows := make([][]string, 0, len(sources))
	for _, s := range sources {
		active := Dim("-")
		if s.Active {
			active = StyleGreen.Render("● active")
		}
		rows = append(rows, []string{
			Bold(s.Name),
			string(s.Format),
			active,
			s.ImportedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return RenderTable([]string{"NAME", "FORMAT", "STATUS", "IMPORTED"}, rows)
}

// FormatImportReport summarizes what normalization kept and repaired.
func FormatImportReport(name string, rep importer.Report, activated bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("Imported"), Bold(name))
	fmt.Fprintf(&b, "  %d sub-levels, %d objectives, %d skills, %d indicators\n",
		rep.SubLevels, rep.Objectives, rep.Skills, rep.Indicators)
	if rep.Discarded > 0 {
		fmt.Fprintf(&b, "  %s\n", StyleYellow.Render(fmt.Sprintf("%d empty entries discarded", rep.Discarded)))
	}
	if rep.Coerced > 0 {
		fmt.Fprintf(&b, "  %s\n", StyleYellow.Render(fmt.Sprintf("%d non-text fields read as empty", rep.Coerced)))
	}
	if len(rep.MergedKeys) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", Dim("merged spelling variants of:"), strings.Join(rep.MergedKeys, ", "))
	}
	if rep.DroppedKeys > 0 {
		fmt.Fprintf(&b, "  %s\n", StyleYellow.Render(fmt.Sprintf("%d sub-levels without a name dropped", rep.DroppedKeys)))
	}
	if activated {
		b.WriteString("  " + Dim("now serving this catalog") + "\n")
	}
	return b.String()
}

// FormatCatalogSummary renders per sub-level counts of the served catalog.
func FormatCatalogSummary(s contract.CatalogSummary) string {
	var b strings.Builder
	b.WriteString(Header(s.Area) + "\n")
	b.WriteString(Dim(s.Source) + "\n\n")

	rows := make([][]string, 0, len(s.SubLevels))
	for _, sl := range s.SubLevels {
		rejected := Dim("0")
		if sl.Rejected > 0 {
			rejected = StyleYellow.Render(strconv.Itoa(sl.Rejected))
		}
		rows = append(rows, []string{
			AvailabilityLabel(sl.Key, sl.Available),
			strconv.Itoa(sl.Objectives),
			strconv.Itoa(sl.Skills),
			rejected,
		})
	}
	b.WriteString(RenderTable([]string{"SUB-LEVEL", "OBJECTIVES", "SKILLS", "REJECTED"}, rows))
	return b.String()
}

// FormatSubLevel renders the objectives and filtered skills of one sub-level.
func FormatSubLevel(objectives []domain.Objective, listing contract.SkillListing) string {
	var b strings.Builder
	b.WriteString(Header(listing.SubLevelKey) + "\n\n")

	b.WriteString(Bold("Objectives") + "\n")
	if len(objectives) == 0 {
		b.WriteString("  " + Dim("(none)") + "\n")
	}
	for _, o := range objectives {
		fmt.Fprintf(&b, "  %s %s\n", StyleBlue.Render(OrDash(o.Code)), o.Description)
	}
	b.WriteString("\n")
	b.WriteString(FormatSkills(listing))
	return b.String()
}

// FormatSkills renders a filtered skill list and how many were rejected.
func FormatSkills(listing contract.SkillListing) string {
	var b strings.Builder
	if len(listing.Skills) == 0 {
		b.WriteString(Dim(fmt.Sprintf("No skills for %s.", OrDash(listing.SubLevelKey))) + "\n")
	} else {
		rows := make([][]string, 0, len(listing.Skills))
		for _, s := range listing.Skills {
			rows = append(rows, []string{StyleBlue.Render(OrDash(s.Code)), s.Description, strconv.Itoa(len(s.Indicators))})
		}
		b.WriteString(RenderTable([]string{"CODE", "SKILL", "IND"}, rows))
	}
	if listing.Rejected > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d skill(s) listed here belong to another sub-level and were hidden.", listing.Rejected)) + "\n")
	}
	return b.String()
}
