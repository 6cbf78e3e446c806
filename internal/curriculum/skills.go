package curriculum

import (
	"strings"

	"github.com/alexanderramin/erca/internal/domain"
)

// FindSkill returns the skill whose trimmed code equals code.
func FindSkill(skills []domain.Skill, code string) (domain.Skill, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.Skill{}, false
	}
	for _, s := range skills {
		if strings.TrimSpace(s.Code) == code {
			return s, true
		}
	}
	return domain.Skill{}, false
}
