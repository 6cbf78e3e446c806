package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/erca/internal/contract"
	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/importer"
	"github.com/stretchr/testify/assert"
)

func TestFormatSourceList(t *testing.T) {
	assert.Contains(t, stripANSI(FormatSourceList(nil)), "built-in")

	out := stripANSI(FormatSourceList([]*domain.CatalogSource{
		{Name: "2016", Format: domain.FormatJSON, Active: true, ImportedAt: time.Now()},
		{Name: "priorizado", Format: domain.FormatYAML, ImportedAt: time.Now()},
	}))
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "● active")
	assert.Contains(t, out, "priorizado")
	assert.Contains(t, out, "yaml")
}

func TestFormatImportReport(t *testing.T) {
	out := stripANSI(FormatImportReport("2016", importer.Report{
		SubLevels: 5, Skills: 3, Discarded: 2, MergedKeys: []string{"EGB Superior"},
	}, true))
	assert.Contains(t, out, "Imported 2016")
	assert.Contains(t, out, "3 skills")
	assert.Contains(t, out, "2 empty entries discarded")
	assert.Contains(t, out, "EGB Superior")
	assert.Contains(t, out, "now serving")
	assert.NotContains(t, out, "non-text")
}

func TestFormatCatalogSummary(t *testing.T) {
	out := stripANSI(FormatCatalogSummary(contract.CatalogSummary{
		Area:   "Matemática",
		Source: "Fixture",
		SubLevels: []contract.SubLevelSummary{
			{Key: domain.SubLevelPreparatoria},
			{Key: domain.SubLevelMedia, Objectives: 1, Skills: 2, Rejected: 1, Available: true},
		},
	}))
	assert.Contains(t, out, "MATEMÁTICA")
	assert.Contains(t, out, "○ EGB Preparatoria")
	assert.Contains(t, out, "● EGB Media")
	assert.Contains(t, out, "REJECTED")
}

func TestFormatSkills_ReportsRejected(t *testing.T) {
	out := stripANSI(FormatSkills(contract.SkillListing{
		SubLevelKey: domain.SubLevelMedia,
		Skills:      []domain.Skill{{Code: "M.3.2.6", Description: "Resolver problemas con fracciones."}},
		Rejected:    1,
	}))
	assert.Contains(t, out, "M.3.2.6")
	assert.Contains(t, out, "1 skill(s) listed here belong to another sub-level")

	out = stripANSI(FormatSkills(contract.SkillListing{SubLevelKey: "BGU"}))
	assert.Contains(t, out, "No skills for BGU.")
}

func TestFormatSubLevel(t *testing.T) {
	out := stripANSI(FormatSubLevel(nil, contract.SkillListing{SubLevelKey: domain.SubLevelBGU}))
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "BGU")
}
