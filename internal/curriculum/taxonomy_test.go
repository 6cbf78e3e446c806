package curriculum

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alexanderramin/erca/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skills(codes ...string) []domain.Skill {
	out := make([]domain.Skill, len(codes))
	for i, c := range codes {
		out[i] = domain.Skill{Code: c, Description: "d" + c}
	}
	return out
}

func codes(in []domain.Skill) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.Code
	}
	return out
}

func TestFilterSkills_SinglePrefix(t *testing.T) {
	tax := NewTaxonomy(PrefixRules{"Band-3": {"X.3."}})

	got := tax.FilterSkills("Band-3", skills("X.3.1", "X.1.9"))

	assert.Equal(t, []string{"X.3.1"}, codes(got))
}

func TestFilterSkills_UpperBandAcceptsTwoPrefixes(t *testing.T) {
	tax := NewTaxonomy(DefaultPrefixRules("M"))

	got := tax.FilterSkills(domain.SubLevelSuperior, skills("M.5.1.12", "M.3.2.6", " M.4.2.1", "M.45.1", "I.M.4.1"))

	assert.Equal(t, []string{"M.5.1.12", " M.4.2.1"}, codes(got))
}

func TestFilterSkills_NoRuleIsIdentity(t *testing.T) {
	tax := NewTaxonomy(DefaultPrefixRules("M"))
	in := skills("M.5.1.1", "Z.9", "")

	got := tax.FilterSkills(domain.SubLevelBGU, in)
	assert.Equal(t, in, got)

	got = tax.FilterSkills("Bachillerato Técnico", in)
	assert.Equal(t, in, got)
}

func TestFilterSkills_ConfiguredAdvancedTrack(t *testing.T) {
	tax := NewTaxonomy(DefaultPrefixRules("M", " M.5. ", ""))

	prefixes, ok := tax.Prefixes(domain.SubLevelBGU)
	require.True(t, ok)
	assert.Equal(t, []string{"M.5."}, prefixes)
	assert.Equal(t, []string{"M.5.1"}, codes(tax.FilterSkills(domain.SubLevelBGU, skills("M.5.1", "M.4.1"))))
}

func TestNewTaxonomy_CopiesRules(t *testing.T) {
	rules := PrefixRules{"A": {"A."}}
	tax := NewTaxonomy(rules)
	rules["A"][0] = "B."

	assert.True(t, tax.Allows("A", "A.1"))
	assert.False(t, tax.Allows("A", "B.1"))
	assert.True(t, tax.Allows("unconfigured", "anything"))
}

// TestFilterSkills_Invariants_OrderPreservingSubsequence property-tests the
// filter over random code lists.
func TestFilterSkills_Invariants_OrderPreservingSubsequence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tax := NewTaxonomy(DefaultPrefixRules("M"))
	parts := []string{"M.1.", "M.2.", "M.3.", "M.4.", "M.5.", " M.3.", "I.M.3.", "M.", "X.3."}

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12)
		var cs []string
		for i := 0; i < n; i++ {
			cs = append(cs, parts[rng.Intn(len(parts))]+string(rune('1'+rng.Intn(9))))
		}
		in := skills(cs...)
		key := domain.BaselineSubLevels[rng.Intn(4)]
		prefixes, _ := tax.Prefixes(key)

		got := tax.FilterSkills(key, in)

		// subsequence in order
		j := 0
		for _, s := range in {
			if j < len(got) && got[j].Code == s.Code && got[j].Description == s.Description {
				j++
			}
		}
		assert.Equal(t, len(got), j, "trial %d: output must be an ordered subsequence", trial)

		// exactly the allowed entries
		want := 0
		for _, s := range in {
			for _, p := range prefixes {
				if strings.HasPrefix(strings.TrimSpace(s.Code), p) {
					want++
					break
				}
			}
		}
		assert.Len(t, got, want, "trial %d", trial)
	}
}

func TestFindSkill(t *testing.T) {
	in := skills(" M.3.2.6 ", "M.3.1.1")

	s, ok := FindSkill(in, "M.3.2.6")
	require.True(t, ok)
	assert.Equal(t, " M.3.2.6 ", s.Code)

	_, ok = FindSkill(in, "M.9")
	assert.False(t, ok)
	_, ok = FindSkill(in, "  ")
	assert.False(t, ok)
}

func TestAvailableKey(t *testing.T) {
	tax := NewTaxonomy(DefaultPrefixRules("M"))
	cat := domain.NewCatalog("M", "test", []domain.SubLevelCurriculum{
		{Name: domain.SubLevelPreparatoria},
		{Name: domain.SubLevelMedia, Skills: []domain.Skill{{Code: "M.3.1.1"}}},
		{Name: domain.SubLevelSuperior, Objectives: []domain.Objective{{Code: "O.M.4.1"}}},
		{Name: domain.SubLevelBGU},
	})

	assert.Equal(t, domain.SubLevelSuperior, tax.AvailableKey(cat, domain.SubLevelSuperior))
	assert.Equal(t, domain.SubLevelMedia, tax.AvailableKey(cat, domain.SubLevelBGU), "empty key falls back")
	assert.Equal(t, domain.SubLevelMedia, tax.AvailableKey(cat, "unknown"), "missing key falls back")

	empty := domain.NewCatalog("M", "test", []domain.SubLevelCurriculum{{Name: domain.SubLevelMedia}})
	assert.Equal(t, domain.SubLevelBGU, tax.AvailableKey(empty, domain.SubLevelBGU))
	assert.Equal(t, "x", tax.AvailableKey(nil, "x"))
}

func TestAvailableKey_MisfiledSkillsAreNoData(t *testing.T) {
	tax := NewTaxonomy(DefaultPrefixRules("M"))
	cat := domain.NewCatalog("M", "test", []domain.SubLevelCurriculum{
		{Name: domain.SubLevelElemental, Skills: []domain.Skill{{Code: "M.2.1.4"}}},
		{Name: domain.SubLevelMedia, Skills: []domain.Skill{{Code: "M.2.9.9"}}},
	})

	assert.False(t, tax.HasData(cat, domain.SubLevelMedia))
	assert.True(t, tax.HasData(cat, domain.SubLevelElemental))
	assert.Equal(t, domain.SubLevelElemental, tax.AvailableKey(cat, domain.SubLevelMedia))

	// Without a rule the same skill counts.
	unfiltered := NewTaxonomy(PrefixRules{})
	assert.True(t, unfiltered.HasData(cat, domain.SubLevelMedia))
}

