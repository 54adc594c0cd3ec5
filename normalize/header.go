package normalize

// HeaderCleanup removes the conditional header label and the mailing
// instruction line, each with the breaks that follow it.
func HeaderCleanup() Pass {
	return NewSequence("header",
		NewRegexSub("conditional",
			`<div><b>\(IF \{[^}]+\} = [^<]+\)</b></div>\s*<br>\s*`, ""),
		NewRegexSub("mailing instruction",
			`<div style="text-align: justify"><b>Send </b><b>via</b><b> First Class and Certified Mail to the </b><b>Mailing </b><b>address</b></div>\s*<br>\s*`, ""),
	)
}
