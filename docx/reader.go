// Package docx provides DOCX (Office Open XML) document parsing.
//
// The reader exposes the body of a Word document as paragraphs of
// formatted runs and tables of cells, mirroring how a letter template is
// authored: direct formatting only, no style inheritance.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader  *zip.Reader
	document   *documentXML
	paragraphs []Paragraph
	tables     []Table
}

// Paragraph is a body paragraph with its direct formatting.
type Paragraph struct {
	StyleID   string
	Alignment string // raw w:jc value, "" when not set directly
	Runs      []Run
}

// Text returns the concatenated text of the paragraph's runs.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Run is a text run with its direct formatting.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	HalfPts   int // font size in half-points, 0 when not set
}

// Points returns the font size in whole points, truncated, or 0 when unset.
func (r Run) Points() int {
	return r.HalfPts / 2
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return OpenBytes(data)
}

// OpenBytes parses a DOCX document held in memory.
func OpenBytes(data []byte) (*Reader, error) {
	if !available {
		return nil, ErrDOCXNotEnabled
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{
		zipReader: zr,
	}

	// Validate required files exist
	if err := r.validate(); err != nil {
		return nil, err
	}

	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return r, nil
}

// Close releases resources associated with the Reader. The archive is held
// in memory, so Close only drops references.
func (r *Reader) Close() error {
	r.zipReader = nil
	return nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// Paragraphs returns the body paragraphs in document order.
func (r *Reader) Paragraphs() []Paragraph {
	return r.paragraphs
}

// Tables returns the body tables in document order.
func (r *Reader) Tables() []Table {
	return r.tables
}

// Text returns the body paragraph text, one paragraph per line.
func (r *Reader) Text() string {
	parts := make([]string, 0, len(r.paragraphs))
	for _, p := range r.paragraphs {
		parts = append(parts, p.Text())
	}
	return strings.Join(parts, "\n")
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := unmarshalPart(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	if r.document.Body == nil {
		return nil
	}

	r.paragraphs = make([]Paragraph, 0, len(r.document.Body.Paragraphs))
	for _, p := range r.document.Body.Paragraphs {
		r.paragraphs = append(r.paragraphs, convertParagraph(p))
	}

	r.tables = make([]Table, 0, len(r.document.Body.Tables))
	for _, tbl := range r.document.Body.Tables {
		r.tables = append(r.tables, convertTable(tbl))
	}

	return nil
}

// convertParagraph converts a paragraph element, keeping every direct run
// including those with no text.
func convertParagraph(p paragraphXML) Paragraph {
	parsed := Paragraph{
		StyleID:   p.Properties.Style.Val,
		Alignment: p.Properties.Justification.Val,
		Runs:      make([]Run, 0, len(p.Runs)),
	}

	for _, run := range p.Runs {
		parsed.Runs = append(parsed.Runs, Run{
			Text:      run.Text(),
			Bold:      run.Properties.Bold.On(),
			Italic:    run.Properties.Italic.On(),
			Underline: run.Properties.Underline.On(),
			HalfPts:   parseHalfPoints(run.Properties.FontSize.Val),
		})
	}

	return parsed
}

// parseHalfPoints parses a w:sz value. Values that are not plain integers
// (universal measures such as "12pt") are treated as unset.
func parseHalfPoints(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
