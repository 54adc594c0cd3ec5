package normalize

import "strings"

// fieldSentinel survives field cleanup only when the descriptions were
// not stripped.
const fieldSentinel = "(Company Address Line 1)"

// FieldCleanup strips merge-field descriptions. With diagnostics on, a
// banner reporting whether the cleanup took effect is prepended.
func FieldCleanup(diagnostics bool) Pass {
	table := NewReplacements("fields", fieldRules)
	if !diagnostics {
		return table
	}
	return NewSequence("fields", table, NewFunc("banner", banner))
}

func banner(html string) (string, error) {
	if strings.Contains(html, fieldSentinel) {
		return bannerFailed + html, nil
	}
	return bannerOK + html, nil
}
