package domain

import "encoding/json"

// Objective is a broad learning goal scoped to a sub-level.
type Objective struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Indicator is a measurable evaluation criterion attached to one skill.
type Indicator struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Skill is a curriculum skill ("destreza con criterio de desempeño").
type Skill struct {
	Code        string      `json:"code"`
	Description string      `json:"description"`
	Indicators  []Indicator `json:"indicators"`
}

// SubLevelCurriculum holds the objectives and skills listed under one
// sub-level. Skills are stored as found in the source; callers presenting
// them as "the skills of sub-level X" must run them through the taxonomy
// filter first.
type SubLevelCurriculum struct {
	Name       string      `json:"name"`
	Objectives []Objective `json:"objectives"`
	Skills     []Skill     `json:"skills"`
}

func (s SubLevelCurriculum) clone() SubLevelCurriculum {
	return SubLevelCurriculum{
		Name:       s.Name,
		Objectives: cloneObjectives(s.Objectives),
		Skills:     cloneSkills(s.Skills),
	}
}

// Catalog maps sub-level keys to their curriculum. A Catalog is immutable
// once built: every accessor hands out copies, so it can be shared between
// goroutines without locking. Replace it wholesale when the source changes.
type Catalog struct {
	area      string
	source    string
	keys      []string
	subLevels map[string]SubLevelCurriculum
}

// NewCatalog builds a Catalog from sub-levels in the given order. Entries
// sharing a name are merged, keeping the position of the first occurrence.
func NewCatalog(area, source string, subLevels []SubLevelCurriculum) *Catalog {
	c := &Catalog{
		area:      area,
		source:    source,
		subLevels: make(map[string]SubLevelCurriculum, len(subLevels)),
	}
	for _, sl := range subLevels {
		existing, ok := c.subLevels[sl.Name]
		if !ok {
			c.keys = append(c.keys, sl.Name)
			c.subLevels[sl.Name] = sl.clone()
			continue
		}
		existing.Objectives = append(existing.Objectives, cloneObjectives(sl.Objectives)...)
		existing.Skills = append(existing.Skills, cloneSkills(sl.Skills)...)
		c.subLevels[sl.Name] = existing
	}
	return c
}

// Area returns the subject area the catalog covers.
func (c *Catalog) Area() string { return c.area }

// Source returns the provenance of the curriculum data.
func (c *Catalog) Source() string { return c.source }

// Keys returns the sub-level keys in catalog order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of sub-levels.
func (c *Catalog) Len() int { return len(c.keys) }

// Has reports whether key is present, empty or not.
func (c *Catalog) Has(key string) bool {
	_, ok := c.subLevels[key]
	return ok
}

// SubLevel returns a copy of the curriculum stored under key.
func (c *Catalog) SubLevel(key string) (SubLevelCurriculum, bool) {
	sl, ok := c.subLevels[key]
	if !ok {
		return SubLevelCurriculum{}, false
	}
	return sl.clone(), true
}

// Objectives returns the objectives of key, or nil when absent.
func (c *Catalog) Objectives(key string) []Objective {
	return cloneObjectives(c.subLevels[key].Objectives)
}

// Skills returns the unfiltered skills of key, or nil when absent.
func (c *Catalog) Skills(key string) []Skill {
	return cloneSkills(c.subLevels[key].Skills)
}

// SubLevels returns copies of every sub-level in catalog order.
func (c *Catalog) SubLevels() []SubLevelCurriculum {
	out := make([]SubLevelCurriculum, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.subLevels[k].clone())
	}
	return out
}

func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Area      string               `json:"area"`
		Source    string               `json:"source"`
		SubLevels []SubLevelCurriculum `json:"sub_levels"`
	}{c.area, c.source, c.SubLevels()})
}

func cloneObjectives(in []Objective) []Objective {
	if in == nil {
		return nil
	}
	out := make([]Objective, len(in))
	copy(out, in)
	return out
}

func cloneSkills(in []Skill) []Skill {
	if in == nil {
		return nil
	}
	out := make([]Skill, len(in))
	for i, s := range in {
		out[i] = s
		if s.Indicators != nil {
			out[i].Indicators = make([]Indicator, len(s.Indicators))
			copy(out[i].Indicators, s.Indicators)
		}
	}
	return out
}
