package model

import "encoding/json"

// DocumentType labels the letter family detected from paragraph text.
type DocumentType string

// Document types, in classification priority order.
const (
	TypeH003    DocumentType = "H003"
	TypeBR010   DocumentType = "BR010"
	TypeBR017   DocumentType = "BR017"
	TypePrivacy DocumentType = "PRIVACY"
	TypeSL106   DocumentType = "SL106"
	TypeGeneric DocumentType = "GENERIC"
)

// String returns the label.
func (d DocumentType) String() string {
	return string(d)
}

// Valid reports whether d is one of the known labels.
func (d DocumentType) Valid() bool {
	switch d {
	case TypeH003, TypeBR010, TypeBR017, TypePrivacy, TypeSL106, TypeGeneric:
		return true
	}
	return false
}

// FieldCount is the number of times a placeholder occurs in a letter.
type FieldCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Result is the outcome of converting one document.
//
// A successful result carries the normalized HTML plus the extracted
// records. A failed result carries only Error and an HTML fragment
// describing it.
type Result struct {
	Success       bool
	FormattedHTML string
	DocumentType  DocumentType
	Paragraphs    []Paragraph
	Tables        []Table
	Error         string

	// Optional extras, omitted when empty.
	Markdown string
	Fields   []FieldCount
}

// Failure builds a failed result.
func Failure(msg string) Result {
	return Result{
		Success:       false,
		Error:         msg,
		FormattedHTML: "<div>" + msg + "</div>",
	}
}

type successJSON struct {
	Success       bool         `json:"success"`
	FormattedHTML string       `json:"formattedHtml"`
	DocumentType  DocumentType `json:"documentType"`
	Paragraphs    []Paragraph  `json:"paragraphs"`
	Tables        []Table      `json:"tables"`
	Markdown      string       `json:"markdown,omitempty"`
	Fields        []FieldCount `json:"fields,omitempty"`
}

type failureJSON struct {
	Success       bool   `json:"success"`
	Error         string `json:"error"`
	FormattedHTML string `json:"formattedHtml"`
}

// MarshalJSON emits the success or failure shape.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(failureJSON{
			Success:       false,
			Error:         r.Error,
			FormattedHTML: r.FormattedHTML,
		})
	}

	paragraphs := r.Paragraphs
	if paragraphs == nil {
		paragraphs = []Paragraph{}
	}
	tables := r.Tables
	if tables == nil {
		tables = []Table{}
	}
	return json.Marshal(successJSON{
		Success:       true,
		FormattedHTML: r.FormattedHTML,
		DocumentType:  r.DocumentType,
		Paragraphs:    paragraphs,
		Tables:        tables,
		Markdown:      r.Markdown,
		Fields:        r.Fields,
	})
}
