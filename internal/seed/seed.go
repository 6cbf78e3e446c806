// Package seed ships the curriculum used when no source has been imported.
package seed

import _ "embed"

// Name is how the built-in catalog is reported in listings and logs.
const Name = "ecuador-2016-matematica (built-in)"

// MatematicaEGB2016 is the Ecuador 2016 mathematics curriculum for general
// basic education, in the ministry document layout.
//
//go:embed matematica_egb_2016.json
var MatematicaEGB2016 []byte
