package normalize

import (
	"regexp"

	"github.com/joshuahamrick/ncformatter/internal/unispace"
)

// compile rewrites \s to the letter whitespace class and compiles the
// pattern.
func compile(pattern string) *regexp.Regexp {
	return unispace.MustCompile(pattern)
}
