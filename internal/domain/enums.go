package domain

import "strings"

// Level is an education track.
type Level string

const (
	LevelEGB Level = "EGB"
	LevelBGU Level = "BGU"
)

// ParseLevel maps free text onto a Level. Anything that is not the advanced
// track is treated as general basic education.
func ParseLevel(s string) Level {
	if strings.EqualFold(strings.TrimSpace(s), string(LevelBGU)) {
		return LevelBGU
	}
	return LevelEGB
}

// MaxGrade returns the highest grade offered by the level.
func (l Level) MaxGrade() int {
	if l == LevelBGU {
		return 3
	}
	return 10
}

// Canonical sub-level keys.
const (
	SubLevelPreparatoria = "EGB Preparatoria"
	SubLevelElemental    = "EGB Elemental"
	SubLevelMedia        = "EGB Media"
	SubLevelSuperior     = "EGB Superior"
	SubLevelBGU          = "BGU"
)

// BaselineSubLevels is the fixed set of keys every Catalog carries, in
// canonical order.
var BaselineSubLevels = []string{
	SubLevelPreparatoria,
	SubLevelElemental,
	SubLevelMedia,
	SubLevelSuperior,
	SubLevelBGU,
}

// IsBaselineSubLevel reports whether key is one of BaselineSubLevels.
func IsBaselineSubLevel(key string) bool {
	for _, k := range BaselineSubLevels {
		if k == key {
			return true
		}
	}
	return false
}

// Phase is one of the four ERCA lesson phases.
type Phase string

const (
	PhaseExperience      Phase = "E"
	PhaseReflection      Phase = "R"
	PhaseConceptualizing Phase = "C"
	PhaseApplication     Phase = "A"
)

// PhaseOrder is the fixed pedagogical sequence. Remainder minutes are handed
// out in this order.
var PhaseOrder = []Phase{PhaseExperience, PhaseReflection, PhaseConceptualizing, PhaseApplication}

// Title returns the Spanish phase name used in rendered plans.
func (p Phase) Title() string {
	switch p {
	case PhaseExperience:
		return "EXPERIENCIA"
	case PhaseReflection:
		return "REFLEXIÓN"
	case PhaseConceptualizing:
		return "CONCEPTUALIZACIÓN"
	case PhaseApplication:
		return "APLICACIÓN"
	default:
		return string(p)
	}
}
