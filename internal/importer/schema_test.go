package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ministryJSON = `{
  "meta": {"area": "Matemática", "fuente": "Currículo Priorizado"},
  "subniveles": {
    "EGB Superior": {
      "objetivos": [{"codigo": "O.M.4.1", "descripcion": "Resolver problemas"}],
      "destrezas": [
        {"codigo": "M.4.1.1", "descripcion": "Operar con enteros",
         "indicadores": [{"codigo": "I.M.4.1.1", "descripcion": "Opera con enteros"}]}
      ]
    },
    "EGB Media": {"objetivos": [], "destrezas": []}
  }
}`

func TestParse_JSONKeepsKeyOrder(t *testing.T) {
	raw, err := Parse([]byte(ministryJSON))
	require.NoError(t, err)

	assert.Equal(t, "Matemática", raw.Area.Text())
	assert.Equal(t, "Currículo Priorizado", raw.Source.Text())
	require.Len(t, raw.SubLevels, 2)
	assert.Equal(t, "EGB Superior", raw.SubLevels[0].Key)
	assert.Equal(t, "EGB Media", raw.SubLevels[1].Key)

	skills := raw.SubLevels[0].Skills
	require.Len(t, skills, 1)
	assert.Equal(t, "M.4.1.1", skills[0].Code.Text())
	require.Len(t, skills[0].Indicators, 1)
	assert.Equal(t, "I.M.4.1.1", skills[0].Indicators[0].Code.Text())
}

func TestParse_YAML(t *testing.T) {
	doc := `
area: Matemática
subniveles:
  EGB Elemental:
    objetivos:
      - codigo: O.M.2.1
        descripcion: Resolver problemas sencillos
    destrezas:
      - codigo: M.2.1.4
        descripcion: Sumar y restar
        indicadores:
          - codigo: I.M.2.1.4
            descripcion: Aplica suma y resta
  EGB Preparatoria: {}
`
	raw, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "Matemática", raw.Area.Text())
	require.Len(t, raw.SubLevels, 2)
	assert.Equal(t, "EGB Elemental", raw.SubLevels[0].Key)
	assert.Equal(t, "O.M.2.1", raw.SubLevels[0].Objectives[0].Code.Text())
	assert.Equal(t, "Aplica suma y resta", raw.SubLevels[0].Skills[0].Indicators[0].Description.Text())
	assert.Empty(t, raw.SubLevels[1].Skills)
}

func TestParse_NonStringScalarsAreFlagged(t *testing.T) {
	doc := `{"subniveles": {"X": {"destrezas": [
		{"codigo": 42, "descripcion": true},
		{"codigo": null, "descripcion": "  solo descripcion "},
		"not an object",
		{"codigo": ["M.1"], "descripcion": {"a": 1}}
	]}}}`
	raw, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, raw.SubLevels, 1)

	skills := raw.SubLevels[0].Skills
	require.Len(t, skills, 4)

	assert.True(t, skills[0].Code.Present)
	assert.False(t, skills[0].Code.IsString)
	assert.Equal(t, "", skills[0].Code.Text())
	assert.Equal(t, "", skills[0].Description.Text())

	assert.Equal(t, "solo descripcion", skills[1].Description.Text())

	assert.False(t, skills[2].Code.Present)
	assert.Equal(t, "", skills[3].Code.Text())
	assert.Equal(t, "", skills[3].Description.Text())
}

func TestParse_WrongShapesYieldEmptyCatalog(t *testing.T) {
	for _, doc := range []string{``, `[]`, `"text"`, `{"subniveles": 3}`, `{"subniveles": {"A": "nope"}}`} {
		raw, err := Parse([]byte(doc))
		require.NoError(t, err, doc)
		for _, sl := range raw.SubLevels {
			assert.Empty(t, sl.Skills, doc)
			assert.Empty(t, sl.Objectives, doc)
		}
	}
}

func TestParse_SequenceOfSubLevels(t *testing.T) {
	doc := `{"sub_levels": [{"name": "EGB Media", "skills": [{"code": "M.3.2.6", "description": "Fracciones"}]}]}`
	raw, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, raw.SubLevels, 1)
	assert.Equal(t, "EGB Media", raw.SubLevels[0].Key)
	assert.Equal(t, "M.3.2.6", raw.SubLevels[0].Skills[0].Code.Text())
}

// aliasFanOut nests levels of anchors that each reference the previous one
// ten times, so a naive expansion grows as 10^levels.
func aliasFanOut(levels int) string {
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= levels; i++ {
		prev := fmt.Sprintf("*l%d", i-1)
		refs := strings.TrimSuffix(strings.Repeat(prev+", ", 10), ", ")
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, refs)
	}
	b.WriteString("subniveles:\n  EGB Media:\n    destrezas: *l" + strconv.Itoa(levels) + "\n")
	b.WriteString("    objetivos:\n      - codigo: O.M.3.1\n        descripcion: Aplicar conceptos.\n")
	return b.String()
}

func TestParse_YAMLAliasFanOutStaysLinear(t *testing.T) {
	raw, err := Parse([]byte(aliasFanOut(12)))
	require.NoError(t, err)

	require.Len(t, raw.SubLevels, 1)
	assert.Equal(t, "EGB Media", raw.SubLevels[0].Key)
	require.Len(t, raw.SubLevels[0].Objectives, 1)
	assert.Equal(t, "O.M.3.1", raw.SubLevels[0].Objectives[0].Code.Text())
	// Items of the aliased list are lists, so no entry carries a field.
	require.Len(t, raw.SubLevels[0].Skills, 10)
	for _, s := range raw.SubLevels[0].Skills {
		assert.False(t, s.Code.Present)
		assert.False(t, s.Description.Present)
	}
}

func TestParse_YAMLSharedAnchorReadsTheSame(t *testing.T) {
	doc := `
comun: &comun
  - codigo: M.3.2.6
    descripcion: Resolver problemas con fracciones.
subniveles:
  EGB Media:
    destrezas: *comun
  EGB Superior:
    destrezas: *comun
`
	raw, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, raw.SubLevels, 2)
	for _, sl := range raw.SubLevels {
		require.Len(t, sl.Skills, 1, sl.Key)
		assert.Equal(t, "M.3.2.6", sl.Skills[0].Code.Text())
	}
}

func TestParse_MalformedDocument(t *testing.T) {
	_, err := Parse([]byte(`{"subniveles": {`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{} {}`))
	assert.Error(t, err)

	_, err = Parse([]byte("a: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(ministryJSON), 0o644))

	raw, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, raw.SubLevels, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
