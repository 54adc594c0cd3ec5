package normalize

import (
	"regexp"
	"strings"
)

var (
	breakRun    = compile(`<br>\s*<br>\s*<br>\s*<br>\s*<br>\s*<br>\s*<br>`)
	emptyBold   = compile(`<b>\s*</b>`)
	emptyUnder  = compile(`<u>\s*</u>`)
	spaceRun    = compile(`\s+`)
	fiveBreaks  = "<br><br><br><br><br>"
	letterStart = `<div style="text-align: justify"><b>\{\[H002\]\} </b></div>`
	borrowerRow = "<div><b>Borrower Name:</b><b>\t</b>" + `\{\[M558\]\} and \{\[M559\]\}</div>`
)

// Structure rewrites the cleaned letter into the target layout. The
// header is replaced by the letterhead, the borrower lines by the
// borrower table, and then each structure rule is applied in turn with
// the text tidied after every rule.
func Structure() Pass {
	return newStructure(
		NewSpanReplace("letterhead", letterStart, []string{regexp.QuoteMeta(Title)}, Letterhead),
		NewSpanReplace("borrower table", borrowerRow, []string{`<div>Dear \{\[Salutation\]\},</div>`}, RETable),
	)
}

// newStructure runs the span passes and then the structure rules. An
// error from a span pass stops the structure pass.
func newStructure(spans ...Pass) Pass {
	passes := append(spans[:len(spans):len(spans)], NewFunc("rules", applyStructureRules))
	return NewSequence("structure", passes...)
}

func applyStructureRules(html string) (string, error) {
	for _, rule := range structureRules {
		html = strings.ReplaceAll(html, rule.Find, rule.Replace)
		html = Tidy(html)
	}
	return html, nil
}

// Tidy caps break runs, drops empty bold and underline tags, collapses
// whitespace to single spaces and then restores line structure with
// Spacing.
func Tidy(html string) string {
	html = breakRun.ReplaceAllString(html, fiveBreaks)
	html = emptyBold.ReplaceAllString(html, "")
	html = emptyUnder.ReplaceAllString(html, "")
	html = spaceRun.ReplaceAllString(html, " ")
	return Spacing(html)
}
