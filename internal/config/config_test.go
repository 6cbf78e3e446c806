package config

import (
	"testing"

	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, scheduler.DefaultBounds, cfg.Bounds())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ERCA_DB", "/tmp/erca-test.db")
	t.Setenv("ERCA_AREA_CODE", "CN")
	t.Setenv("ERCA_BGU_PREFIXES", "CN.5., CN.6.")
	t.Setenv("ERCA_MIN_DURATION", "30")
	t.Setenv("ERCA_MAX_DURATION", "90")
	t.Setenv("ERCA_LOG_USE_CASES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/erca-test.db", cfg.DBPath)
	assert.Equal(t, scheduler.Bounds{MinMin: 30, MaxMin: 90}, cfg.Bounds())
	assert.True(t, cfg.LogUseCases)

	tax := cfg.Taxonomy()
	prefixes, ok := tax.Prefixes(domain.SubLevelBGU)
	require.True(t, ok)
	assert.Equal(t, []string{"CN.5.", "CN.6."}, prefixes)
	prefixes, _ = tax.Prefixes(domain.SubLevelMedia)
	assert.Equal(t, []string{"CN.3."}, prefixes)

	path, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/erca-test.db", path)
}

func TestLoad_InvalidBounds(t *testing.T) {
	t.Setenv("ERCA_MIN_DURATION", "120")
	t.Setenv("ERCA_MAX_DURATION", "60")

	_, err := Load()
	assert.ErrorContains(t, err, "ERCA_MAX_DURATION")
}

func TestLoad_UnparsableNumber(t *testing.T) {
	t.Setenv("ERCA_MAX_DURATION", "lots")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.AreaCode = " "
	cfg.DefaultDuration = 0
	err := cfg.Validate()
	assert.ErrorContains(t, err, "ERCA_AREA_CODE")
	assert.ErrorContains(t, err, "ERCA_DEFAULT_DURATION")
}

func TestTaxonomy_AdvancedTrackUnfilteredByDefault(t *testing.T) {
	_, ok := Default().Taxonomy().Prefixes(domain.SubLevelBGU)
	assert.False(t, ok)
}
