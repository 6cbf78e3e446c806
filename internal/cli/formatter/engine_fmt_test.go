package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/erca/internal/contract"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatResolution(t *testing.T) {
	out := stripANSI(FormatResolution(contract.Resolution{
		Level: domain.LevelBGU, Grade: "2",
		ResolvedKey: domain.SubLevelBGU, AvailableKey: domain.SubLevelPreparatoria, Available: true,
	}))
	assert.Contains(t, out, "No data for BGU; falling back to EGB Preparatoria.")

	out = stripANSI(FormatResolution(contract.Resolution{
		Level: domain.LevelEGB, Grade: "7",
		ResolvedKey: domain.SubLevelMedia, AvailableKey: domain.SubLevelMedia, Available: true,
	}))
	assert.NotContains(t, out, "falling back")
	assert.Contains(t, out, "● EGB Media")
}

func TestFormatMatches_MarksBest(t *testing.T) {
	out := stripANSI(FormatMatches("fracciones", []contract.ScoredSkill{
		{Code: "M.3.1.1", Description: "Sucesiones", Score: 0},
		{Code: "M.3.2.6", Description: "Fracciones", Score: 4, Best: true},
	}))
	lines := strings.Split(out, "\n")
	var best string
	for _, l := range lines {
		if strings.Contains(l, "▶") {
			best = l
		}
	}
	assert.Contains(t, best, "M.3.2.6")
	assert.Contains(t, stripANSI(FormatMatches("x", nil)), "No candidate skills.")
}

func TestFormatAllocation(t *testing.T) {
	out := stripANSI(FormatAllocation(contract.Allocation{
		Requested: 500, Total: 200,
		Phases: domain.PhaseAllocation{E: 50, R: 50, C: 50, A: 50},
	}))
	assert.Contains(t, out, "500 min is out of range; using 200 min.")
	assert.Contains(t, out, "E=50 | R=50 | C=50 | A=50")
	assert.Equal(t, 40, strings.Count(out, "█"))
}

func TestRenderTable_TruncatesLongCells(t *testing.T) {
	long := strings.Repeat("a", maxCellWidth+10)
	out := stripANSI(RenderTable([]string{"COL"}, [][]string{{long}}))
	assert.Contains(t, out, strings.Repeat("a", maxCellWidth-1)+"…")
	assert.NotContains(t, out, long)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "fracc…", Truncate("fracciones", 6))
	assert.Equal(t, "ñand…", Truncate("ñandúes", 5))
}
