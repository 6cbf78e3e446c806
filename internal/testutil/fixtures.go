package testutil

import (
	"time"

	"github.com/alexanderramin/erca/internal/domain"
	"github.com/google/uuid"
)

// SampleCatalogJSON is a small ministry-style document. "EGB Media" carries a
// contaminating preparatory skill, "EGB  Superior" a spacing variant of the
// baseline key, and one skill entry is blank.
const SampleCatalogJSON = `{
  "meta": {"area": "Matemática", "fuente": "Fixture"},
  "subniveles": {
    "EGB Elemental": {
      "objetivos": [{"codigo": "O.M.2.1", "descripcion": "Resolver problemas sencillos."}],
      "destrezas": [
        {"codigo": "M.2.1.4", "descripcion": "Resolver problemas de suma y resta.",
         "indicadores": [{"codigo": "I.M.2.1.4", "descripcion": "Aplica suma y resta."}]}
      ]
    },
    "EGB Media": {
      "objetivos": [{"codigo": "O.M.3.1", "descripcion": "Aplicar conceptos matemáticos."}],
      "destrezas": [
        {"codigo": "M.3.1.1", "descripcion": "Generar sucesiones con números naturales.", "indicadores": []},
        {"codigo": "M.1.9.9", "descripcion": "Destreza mal ubicada.", "indicadores": []},
        {"codigo": "M.3.2.6", "descripcion": "Resolver problemas con fracciones.",
         "indicadores": [{"codigo": "I.M.3.2.6", "descripcion": "Representa fracciones."}]},
        {"codigo": "", "descripcion": "  "}
      ]
    },
    "EGB  Superior": {
      "objetivos": [{"codigo": "O.M.5.1", "descripcion": "Desarrollar el pensamiento lógico."}],
      "destrezas": [
        {"codigo": "M.5.1.12", "descripcion": "Reconocer fracciones equivalentes.",
         "indicadores": [{"codigo": "I.M.5.4.1", "descripcion": "Identifica fracciones equivalentes."}]}
      ]
    }
  }
}`

// SampleCatalogYAML holds a single upper-band skill.
const SampleCatalogYAML = `
meta:
  fuente: Fixture YAML
subniveles:
  EGB Superior:
    destrezas:
      - codigo: M.4.1.1
        descripcion: Operar con números enteros.
`

// NewTestSource returns an unsaved catalog source holding raw.
func NewTestSource(name string, format domain.SourceFormat, raw string) *domain.CatalogSource {
	return &domain.CatalogSource{
		ID:         uuid.New().String(),
		Name:       name,
		Format:     format,
		Raw:        []byte(raw),
		ImportedAt: time.Now().UTC().Truncate(time.Second),
	}
}
