package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PhaseAllocation is the minute split of a lesson across the ERCA phases.
type PhaseAllocation struct {
	E int `json:"e"`
	R int `json:"r"`
	C int `json:"c"`
	A int `json:"a"`
}

// Sum returns E+R+C+A.
func (p PhaseAllocation) Sum() int {
	return p.E + p.R + p.C + p.A
}

// Minutes returns the minutes assigned to phase.
func (p PhaseAllocation) Minutes(phase Phase) int {
	switch phase {
	case PhaseExperience:
		return p.E
	case PhaseReflection:
		return p.R
	case PhaseConceptualizing:
		return p.C
	case PhaseApplication:
		return p.A
	}
	return 0
}

// With returns a copy of p with phase set to minutes.
func (p PhaseAllocation) With(phase Phase, minutes int) PhaseAllocation {
	switch phase {
	case PhaseExperience:
		p.E = minutes
	case PhaseReflection:
		p.R = minutes
	case PhaseConceptualizing:
		p.C = minutes
	case PhaseApplication:
		p.A = minutes
	}
	return p
}

func (p PhaseAllocation) String() string {
	return fmt.Sprintf("E=%d | R=%d | C=%d | A=%d", p.E, p.R, p.C, p.A)
}

// Selection is the caller-owned planning state. The engine reads it and
// never keeps a reference to it.
type Selection struct {
	Subject       string `json:"subject"`
	Level         Level  `json:"level"`
	Grade         string `json:"grade"`
	Unit          string `json:"unit"`
	Topic         string `json:"topic"`
	SubLevelKey   string `json:"sub_level_key,omitempty"`
	SkillCode     string `json:"skill_code,omitempty"`
	DurationTotal int    `json:"duration_total"`

	// Phases carries hand-edited minutes. When nil the total is allocated
	// from scratch.
	Phases *PhaseAllocation `json:"phases,omitempty"`
}

// GradeLabel renders the grade as shown on a plan ("7 EGB"). The grade is
// clamped to the range the level offers; unparsable text becomes 1.
func (s Selection) GradeLabel() string {
	level := s.Level
	if level == "" {
		level = LevelEGB
	}
	g, err := strconv.Atoi(strings.TrimSpace(s.Grade))
	if err != nil || g < 1 {
		g = 1
	}
	if top := level.MaxGrade(); g > top {
		g = top
	}
	return fmt.Sprintf("%d %s", g, level)
}

// LessonPlan is the resolved tuple handed to renderers. Missing pieces are
// nil or empty, never errors.
type LessonPlan struct {
	Subject    string `json:"subject"`
	GradeLabel string `json:"grade_label"`
	Unit       string `json:"unit"`
	Topic      string `json:"topic"`

	// ResolvedKey is what the grade mapped to; SubLevelKey is the key the
	// plan actually draws from after the availability fallback.
	ResolvedKey string `json:"resolved_key"`
	SubLevelKey string `json:"sub_level_key"`

	Objective  *Objective  `json:"objective"`
	Skill      *Skill      `json:"skill"`
	Indicators []Indicator `json:"indicators"`
	Candidates []Skill     `json:"candidates"`

	DurationTotal  int             `json:"duration_total"`
	Phases         PhaseAllocation `json:"phases"`
	ManualPhases   bool            `json:"manual_phases"`
	PhasesBalanced bool            `json:"phases_balanced"`
}
