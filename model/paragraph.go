package model

import "strings"

// Alignment values used by paragraphs and table cells.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// Run is a text fragment with uniform formatting.
type Run struct {
	Text      string  `json:"text"`
	Bold      bool    `json:"bold"`
	Underline bool    `json:"underline"`
	Italic    bool    `json:"italic"`
	FontSize  *string `json:"fontSize"` // e.g. "12pt"; nil when the run declares no size
}

// Size returns the run's font size, or "" when unset.
func (r Run) Size() string {
	if r.FontSize == nil {
		return ""
	}
	return *r.FontSize
}

// Paragraph is a block of runs with paragraph-level formatting.
type Paragraph struct {
	Text      string  `json:"text"`
	Alignment string  `json:"alignment"`
	FontSize  *string `json:"fontSize"` // always nil; sizes live on runs
	Bold      bool    `json:"bold"`
	Underline bool    `json:"underline"`
	Italic    bool    `json:"italic"`
	Runs      []Run   `json:"runs"`
}

// NewParagraph builds a Paragraph from its runs, concatenating run text and
// deriving the paragraph-level flags.
func NewParagraph(alignment string, runs []Run) Paragraph {
	if alignment == "" {
		alignment = AlignLeft
	}
	if runs == nil {
		runs = []Run{}
	}

	p := Paragraph{
		Alignment: alignment,
		Runs:      runs,
	}

	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	p.Text = sb.String()

	if len(runs) == 0 {
		return p
	}

	// Bold requires every visible run to be bold; a paragraph of only
	// whitespace runs is vacuously bold.
	p.Bold = true
	for _, r := range runs {
		if strings.TrimSpace(r.Text) != "" && !r.Bold {
			p.Bold = false
		}
		if r.Underline {
			p.Underline = true
		}
		if r.Italic {
			p.Italic = true
		}
	}

	return p
}

// IsBlank reports whether the paragraph has no visible text.
func (p Paragraph) IsBlank() bool {
	return strings.TrimSpace(p.Text) == ""
}

// UniformSize returns the font size shared by every run that declares one.
// It returns "" when no run declares a size or when declared sizes differ.
func (p Paragraph) UniformSize() string {
	size := ""
	for _, r := range p.Runs {
		s := r.Size()
		if s == "" {
			continue
		}
		if size == "" {
			size = s
			continue
		}
		if s != size {
			return ""
		}
	}
	return size
}
