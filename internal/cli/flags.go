package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/erca/internal/domain"
	"github.com/spf13/pflag"
)

// levelValue is a --level flag accepting EGB or BGU in any case.
type levelValue struct {
	level *domain.Level
}

var _ pflag.Value = levelValue{}

func newLevelValue(target *domain.Level) levelValue {
	*target = domain.LevelEGB
	return levelValue{level: target}
}

func (v levelValue) String() string {
	if v.level == nil {
		return string(domain.LevelEGB)
	}
	return string(*v.level)
}

func (v levelValue) Set(s string) error {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(domain.LevelEGB):
		*v.level = domain.LevelEGB
	case string(domain.LevelBGU):
		*v.level = domain.LevelBGU
	default:
		return fmt.Errorf("level must be EGB or BGU, got %q", s)
	}
	return nil
}

func (v levelValue) Type() string { return "EGB|BGU" }

// addGradeFlags registers the --level and --grade pair shared by the
// resolution commands.
func addGradeFlags(fs *pflag.FlagSet, level *domain.Level, grade *string) {
	fs.Var(newLevelValue(level), "level", "Education level (EGB or BGU)")
	fs.StringVar(grade, "grade", "7", "Grade or course number")
}
