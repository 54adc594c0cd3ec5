package normalize

import (
	"regexp"
	"strings"
)

// matrixFields are company-level fields served from the plsMatrix source.
var matrixFields = []string{
	"CSPhoneNumber", "SPOCContactEmail", "PayoffAddr1", "PayoffAddr2",
	"CompanyShortName", "CompanyLongName", "CashMgmtDept", "LossMitHrs",
	"LoanCounselingPh", "SeeReverse",
}

// moneyPatterns are tried in order; the first group is the field name.
var moneyPatterns = []string{
	`\$\{\[([A-Z0-9]+E6)\]\}\s*\([^)]*\)`,
	`\$\{\[([A-Z0-9]+E6)\]\}\([^)]*\)`,
	`\$\{\[([A-Z0-9]+E6)\]\}`,
	`\{\[([A-Z0-9]+E6)\]\}\s*\([^)]*\)`,
	`\{\[([A-Z0-9]+E6)\]\}\([^)]*\)`,
	`\$\{\[([A-Z0-9]+)\]\}\s*\([^)]*\)`,
	`\$\{\[([A-Z0-9]+)\]\}\([^)]*\)`,
}

// MatrixPrefix qualifies company-level fields with the plsMatrix source.
func MatrixPrefix() Pass {
	var passes []Pass
	for _, f := range matrixFields {
		passes = append(passes, NewRegexSub(f, `\{\[`+regexp.QuoteMeta(f)+`\]\}`, "{[plsMatrix."+f+"]}"))
	}
	return NewSequence("matrix prefix", passes...)
}

// MoneyWrap wraps dollar amounts and E6 amount fields in Money() calls,
// dropping any description in parentheses that follows them.
func MoneyWrap() Pass {
	var passes []Pass
	for i, p := range moneyPatterns {
		passes = append(passes, NewRegexSub("money "+string(rune('a'+i)), p, "{Money({[${1}]})}"))
	}
	return NewSequence("money", passes...)
}

// PaymentBlock replaces the payment lines, from "Number of Payments Due:"
// up to the paragraph that follows them, with the payment table. The
// field-bound table is used when the span already carries Money() calls.
func PaymentBlock() Pass {
	return newSpanReplaceFunc("payment table",
		`<div[^>]*>Number of Payments Due:`,
		[]string{
			`<div[^>]*>If you do not cure`,
			`<div[^>]*>You should realize`,
			`<div[^>]*>Please consider`,
		},
		func(span string) string {
			if strings.Contains(span, "{Money(") {
				return PaymentTableFields
			}
			return PaymentTable
		},
	)
}

// TitleFormat centers and bolds a plain title paragraph.
func TitleFormat() Pass {
	return NewRegexSub("title format", `<div[^>]*>Notice of Intention to Foreclose Mortgage</div>`, Title)
}

// Extended bundles the opt-in rewrites and re-tidies their output.
func Extended() Pass {
	return NewSequence("extended",
		MatrixPrefix(),
		MoneyWrap(),
		PaymentBlock(),
		TitleFormat(),
		NewFunc("tidy", func(html string) (string, error) { return Tidy(html), nil }),
	)
}
