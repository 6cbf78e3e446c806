package curriculum

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/erca/internal/domain"
)

// Band maps every grade up to and including MaxGrade (and above the
// previous band's MaxGrade) onto a sub-level key.
type Band struct {
	MaxGrade int
	Key      string
}

// DefaultBands is the grade-to-sub-level policy for general basic education:
// grade ≤1 preparatory, 2–4 elementary, 5–7 middle, 8 and above upper.
var DefaultBands = []Band{
	{MaxGrade: 1, Key: domain.SubLevelPreparatoria},
	{MaxGrade: 4, Key: domain.SubLevelElemental},
	{MaxGrade: 7, Key: domain.SubLevelMedia},
	{MaxGrade: math.MaxInt, Key: domain.SubLevelSuperior},
}

// Resolver maps (level, grade) to a sub-level key. The zero value is not
// usable; build one with NewResolver.
type Resolver struct {
	bands       []Band
	advancedKey string
}

// NewResolver returns a Resolver over bands, ordered by MaxGrade. An empty
// band table falls back to DefaultBands.
func NewResolver(bands []Band) *Resolver {
	if len(bands) == 0 {
		bands = DefaultBands
	}
	cp := slices.Clone(bands)
	slices.SortStableFunc(cp, func(a, b Band) int { return cmp.Compare(a.MaxGrade, b.MaxGrade) })
	return &Resolver{bands: cp, advancedKey: domain.SubLevelBGU}
}

// DefaultResolver uses DefaultBands.
func DefaultResolver() *Resolver {
	return NewResolver(nil)
}

// EarliestKey is the key of the lowest band, used when a grade cannot be read.
func (r *Resolver) EarliestKey() string {
	return r.bands[0].Key
}

// ResolveSubLevel never fails: the advanced track has a single key, and
// grade text that is not an integer resolves to the earliest band. Integers
// too large to parse still land in the band their sign points to.
func (r *Resolver) ResolveSubLevel(level domain.Level, gradeText string) string {
	if level == domain.LevelBGU {
		return r.advancedKey
	}
	text := strings.TrimSpace(gradeText)
	grade, err := strconv.Atoi(text)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(text, "-") {
		return r.bands[len(r.bands)-1].Key
	}
	if err != nil {
		return r.EarliestKey()
	}
	for _, b := range r.bands {
		if grade <= b.MaxGrade {
			return b.Key
		}
	}
	return r.bands[len(r.bands)-1].Key
}
