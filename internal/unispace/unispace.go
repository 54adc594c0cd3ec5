// Package unispace compiles rule patterns whose \s must match the same
// whitespace as the tooling the letter rules were written against.
package unispace

import (
	"regexp"
	"strings"
)

// Class matches one whitespace character: ASCII controls, the
// information separators, NEL and every Unicode space separator,
// including the no-break spaces Word emits.
const Class = `[\t\n\x0b\f\r\x1c-\x1f\x85\p{Z}]`

// Expand rewrites \s in pattern to Class. Patterns must not use \s inside
// a bracket expression.
func Expand(pattern string) string {
	return strings.ReplaceAll(pattern, `\s`, Class)
}

// MustCompile expands pattern and compiles it. It panics on an invalid
// pattern.
func MustCompile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(Expand(pattern))
}
