package normalize

import "strings"

var spacingRules = []Replacement{
	{" <br> ", "\n<br>\n"},
	{"<br> ", "<br>\n"},
	{" <br>", "\n<br>"},
	{" </div>", "\n</div>"},
	{" <div>", "\n<div>"},

	// table layout
	{"<td", "  <td"},
	{"</tr>   <tr>", "  </tr><tr>"},
	{"</td> \n  </tr>", "</td>\n  </tr>"},
	{"</td> \n</td>", "</td>\n    </td>"},
	{"   <td", "  <td"},
	{"   <tr>", "<tr>"},

	// contact fields are never bold
	{"<b>{[plsMatrix.CSPhoneNumber]}</b>", "{[plsMatrix.CSPhoneNumber]}"},
	{"<b>{[plsMatrix.SPOCContactEmail]}</b>", "{[plsMatrix.SPOCContactEmail]}"},
	{"<b>{[plsMatrix.PayoffAddr1]}, {[plsMatrix.PayoffAddr2]}.</b>", "{[plsMatrix.PayoffAddr1]}, {[plsMatrix.PayoffAddr2]}."},
}

var (
	blankLines = compile(`\n\s*\n\s*\n`)
	newlineRun = compile(`\n{3,}`)
)

// Spacing breaks whitespace-collapsed HTML back into lines around
// breaks and blocks, lays out table rows and caps blank lines at one.
//
// Spacing is not idempotent: each call indents table cells again. It is
// meant to run on text whose whitespace was just collapsed, as Tidy does.
func Spacing(html string) string {
	for _, r := range spacingRules {
		html = strings.ReplaceAll(html, r.Find, r.Replace)
	}
	html = blankLines.ReplaceAllString(html, "\n\n")
	return newlineRun.ReplaceAllString(html, "\n\n")
}
