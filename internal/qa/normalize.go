// Package qa builds the templated question/answer supervision pairs for one
// labeled video segment.
package qa

import "strings"

// Normalize makes a raw label readable by replacing underscores with spaces.
// Casing and internal whitespace are left alone.
func Normalize(text string) string {
	return strings.ReplaceAll(text, "_", " ")
}
