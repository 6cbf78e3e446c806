package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_MergesDuplicateNames(t *testing.T) {
	cat := NewCatalog("Matemática", "src", []SubLevelCurriculum{
		{Name: "A", Skills: []Skill{{Code: "1"}}},
		{Name: "B"},
		{Name: "A", Objectives: []Objective{{Code: "O"}}, Skills: []Skill{{Code: "2"}}},
	})

	assert.Equal(t, []string{"A", "B"}, cat.Keys())
	assert.Equal(t, 2, cat.Len())
	sl, ok := cat.SubLevel("A")
	require.True(t, ok)
	assert.Len(t, sl.Objectives, 1)
	assert.Equal(t, []string{"1", "2"}, []string{sl.Skills[0].Code, sl.Skills[1].Code})
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	input := []SubLevelCurriculum{{
		Name:   "A",
		Skills: []Skill{{Code: "M.1", Indicators: []Indicator{{Code: "I.1"}}}},
	}}
	cat := NewCatalog("", "", input)

	input[0].Skills[0].Code = "changed"
	got := cat.Skills("A")
	got[0].Indicators[0].Code = "changed"
	keys := cat.Keys()
	keys[0] = "changed"

	again := cat.Skills("A")
	assert.Equal(t, "M.1", again[0].Code)
	assert.Equal(t, "I.1", again[0].Indicators[0].Code)
	assert.Equal(t, []string{"A"}, cat.Keys())
}

func TestCatalog_MissingKey(t *testing.T) {
	cat := NewCatalog("", "", nil)
	assert.False(t, cat.Has("x"))
	_, ok := cat.SubLevel("x")
	assert.False(t, ok)
	assert.Nil(t, cat.Skills("x"))
	assert.Nil(t, cat.Objectives("x"))
}

func TestCatalog_MarshalJSON(t *testing.T) {
	cat := NewCatalog("Matemática", "MINEDUC", []SubLevelCurriculum{{Name: "EGB Media"}})
	data, err := json.Marshal(cat)
	require.NoError(t, err)
	assert.JSONEq(t, `{"area":"Matemática","source":"MINEDUC","sub_levels":[{"name":"EGB Media","objectives":null,"skills":null}]}`, string(data))
}
