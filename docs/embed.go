// Package docs bundles the todo file format reference with the binary.
package docs

import _ "embed"

// Format is the markdown reference shown by `todo docs`.
//
//go:embed format.md
var Format string
