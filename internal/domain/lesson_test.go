package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseAllocation_SumAndWith(t *testing.T) {
	p := PhaseAllocation{E: 10, R: 10, C: 10, A: 10}
	assert.Equal(t, 40, p.Sum())

	q := p.With(PhaseReflection, 15)
	assert.Equal(t, 10, p.R, "With must not modify the receiver")
	assert.Equal(t, 15, q.Minutes(PhaseReflection))
	assert.Equal(t, 45, q.Sum())
	assert.Equal(t, "E=10 | R=15 | C=10 | A=10", q.String())
}

func TestSelection_GradeLabel(t *testing.T) {
	tests := []struct {
		sel  Selection
		want string
	}{
		{Selection{Level: LevelEGB, Grade: "7"}, "7 EGB"},
		{Selection{Level: LevelEGB, Grade: "15"}, "10 EGB"},
		{Selection{Level: LevelBGU, Grade: "5"}, "3 BGU"},
		{Selection{Grade: "x"}, "1 EGB"},
		{Selection{Level: LevelBGU, Grade: "0"}, "1 BGU"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sel.GradeLabel())
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelBGU, ParseLevel(" bgu "))
	assert.Equal(t, LevelEGB, ParseLevel("EGB"))
	assert.Equal(t, LevelEGB, ParseLevel("whatever"))
	assert.Equal(t, 3, LevelBGU.MaxGrade())
	assert.Equal(t, 10, LevelEGB.MaxGrade())
}

func TestPhase_Title(t *testing.T) {
	assert.Equal(t, "EXPERIENCIA", PhaseExperience.Title())
	assert.Equal(t, "APLICACIÓN", PhaseApplication.Title())
}
