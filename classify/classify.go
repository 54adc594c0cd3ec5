// Package classify detects which letter family a document belongs to.
package classify

import (
	"regexp"
	"strings"

	"github.com/joshuahamrick/ncformatter/internal/unispace"
	"github.com/joshuahamrick/ncformatter/model"
)

// rule maps a textual marker to a document type.
type rule struct {
	docType model.DocumentType
	pattern *regexp.Regexp
}

// rules are tried in order; the first match wins. Matching is case
// sensitive, and \s also matches Unicode spaces such as the no-break
// space Word puts between tokens.
var rules = []rule{
	{model.TypeH003, unispace.MustCompile(`\{Insert\(H003\s+TagHeader\)\}`)},
	{model.TypeBR010, unispace.MustCompile(`Notice of Intention to Foreclose`)},
	{model.TypeBR017, unispace.MustCompile(`Notice of Default and Right to Cure`)},
	{model.TypePrivacy, unispace.MustCompile(`Privacy Policy|FACTS`)},
	{model.TypeSL106, unispace.MustCompile(`maturity date|payoff statement`)},
}

// Text joins paragraph texts with single spaces. The text is matched as
// written, without Unicode normalization.
func Text(paras []model.Paragraph) string {
	parts := make([]string, 0, len(paras))
	for _, p := range paras {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, " ")
}

// Classify returns the type of the first rule matching the joined
// paragraph text, or GENERIC.
func Classify(paras []model.Paragraph) model.DocumentType {
	return ClassifyText(Text(paras))
}

// ClassifyText classifies already joined text.
func ClassifyText(text string) model.DocumentType {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.docType
		}
	}
	return model.TypeGeneric
}
