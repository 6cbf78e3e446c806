// Package matcher ranks curriculum skills against a free-text lesson topic
// by lexical overlap. It is a heuristic: no stemming, no synonyms, no
// confidence value.
package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/erca/internal/domain"
	"github.com/alexanderramin/erca/internal/textnorm"
)

// Keyword is a domain term that earns Weight when it appears in both the
// topic and a candidate. Terms are compared after folding.
type Keyword struct {
	Term   string
	Weight int
}

// DefaultKeywords covers the recurring topics of the mathematics curriculum.
var DefaultKeywords = []Keyword{
	{Term: "fraccion", Weight: 3},
	{Term: "equivalente", Weight: 3},
	{Term: "decimal", Weight: 2},
	{Term: "porcentaje", Weight: 2},
	{Term: "suma", Weight: 2},
	{Term: "resta", Weight: 2},
	{Term: "multiplicacion", Weight: 2},
	{Term: "division", Weight: 2},
	{Term: "ecuacion", Weight: 3},
	{Term: "geometri", Weight: 2},
	{Term: "figura", Weight: 2},
	{Term: "medida", Weight: 2},
	{Term: "estadistic", Weight: 2},
	{Term: "probabilidad", Weight: 2},
	{Term: "numero", Weight: 1},
	{Term: "problema", Weight: 1},
}

// minWordLen is the shortest topic word that counts on its own.
const minWordLen = 4

// Matcher scores skills against topics.
type Matcher struct {
	keywords []Keyword
}

// New returns a Matcher over keywords. A nil list means DefaultKeywords;
// an empty non-nil list disables keyword weighting.
func New(keywords []Keyword) *Matcher {
	if keywords == nil {
		keywords = DefaultKeywords
	}
	m := &Matcher{keywords: make([]Keyword, 0, len(keywords))}
	for _, k := range keywords {
		term := textnorm.Fold(k.Term)
		if term == "" {
			continue
		}
		m.keywords = append(m.keywords, Keyword{Term: term, Weight: k.Weight})
	}
	return m
}

// Scored is a candidate with its overlap score.
type Scored struct {
	Skill domain.Skill
	Score int
}

// Score returns the overlap between topic and the skill's code and
// description: each keyword found in both adds its weight, and each topic
// word of at least four letters found in the candidate text adds one.
func (m *Matcher) Score(topic string, s domain.Skill) int {
	return m.score(textnorm.Fold(topic), textnorm.Words(topic), candidateText(s))
}

func (m *Matcher) score(folded string, words []string, text string) int {
	score := 0
	for _, k := range m.keywords {
		if strings.Contains(folded, k.Term) && strings.Contains(text, k.Term) {
			score += k.Weight
		}
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) >= minWordLen && strings.Contains(text, w) {
			score++
		}
	}
	return score
}

// Rank scores every candidate, keeping input order. BestIndex picks the
// winner from the result.
func (m *Matcher) Rank(candidates []domain.Skill, topic string) []Scored {
	folded := textnorm.Fold(topic)
	words := textnorm.Words(topic)
	out := make([]Scored, len(candidates))
	for i, c := range candidates {
		out[i] = Scored{Skill: c}
		if folded != "" {
			out[i].Score = m.score(folded, words, candidateText(c))
		}
	}
	return out
}

// BestIndex returns the position of the first highest score, or -1 when
// scored is empty. Candidates are told apart by position, never by code:
// source files repeat codes.
func BestIndex(scored []Scored) int {
	best, bestScore := -1, -1
	for i, sc := range scored {
		if sc.Score > bestScore {
			best, bestScore = i, sc.Score
		}
	}
	return best
}

// BestMatch returns the highest-scoring candidate, the first one on ties.
// A blank topic, or a topic matching nothing, selects the first candidate;
// ok is false only when there are no candidates.
func (m *Matcher) BestMatch(candidates []domain.Skill, topic string) (domain.Skill, bool) {
	i := BestIndex(m.Rank(candidates, topic))
	if i < 0 {
		return domain.Skill{}, false
	}
	return candidates[i], true
}

func candidateText(s domain.Skill) string {
	return textnorm.Fold(s.Code + " " + s.Description)
}
