package normalize

// SalutationCollapse replaces the run of alternative greetings, from the
// first "Dear" paragraph up to the opening of the notice body, with a
// single salutation.
func SalutationCollapse() Pass {
	return NewSpanReplace("salutation",
		`<div[^>]*>Dear`,
		[]string{
			`<div[^>]*>Notice is hereby given`,
			`<div[^>]*>To cure`,
			`<div[^>]*>You are required`,
		},
		Salutation,
	)
}
