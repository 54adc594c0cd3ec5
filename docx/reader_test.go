//go:build !nodocx

package docx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// buildDOCX assembles a DOCX archive from named parts.
func buildDOCX(t *testing.T, parts map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

// createTestDOCX creates a minimal DOCX document whose body holds content.
func createTestDOCX(t *testing.T, content string) []byte {
	t.Helper()
	return createTestPackage(t, testDocumentXML("UTF-8", content))
}

// testDocumentXML returns a document part declaring encoding.
func testDocumentXML(encoding, content string) string {
	return `<?xml version="1.0" encoding="` + encoding + `" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>` + content + `</w:body>
</w:document>`
}

// createTestPackage wraps an encoded document part in a minimal package.
func createTestPackage(t *testing.T, document string) []byte {
	t.Helper()

	// [Content_Types].xml
	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

	// _rels/.rels
	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	return buildDOCX(t, map[string]string{
		"[Content_Types].xml": contentTypes,
		"_rels/.rels":         rels,
		"word/document.xml":   document,
	})
}

func mustOpen(t *testing.T, content string) *Reader {
	t.Helper()
	r, err := OpenBytes(createTestDOCX(t, content))
	if err != nil {
		t.Fatalf("OpenBytes() error = %v", err)
	}
	return r
}

func TestOpen(t *testing.T) {
	data := createTestDOCX(t, `<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>`)
	docxPath := filepath.Join(t.TempDir(), "test.docx")
	if err := os.WriteFile(docxPath, data, 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if r.document == nil {
		t.Error("document should not be nil")
	}
	if got := r.Text(); got != "Hello World" {
		t.Errorf("Text() = %q, want %q", got, "Hello World")
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.docx")
	if err == nil {
		t.Error("Open() should return error for nonexistent file")
	}
}

func TestOpenBytes_InvalidZip(t *testing.T) {
	_, err := OpenBytes([]byte("not a zip file"))
	if err == nil {
		t.Error("OpenBytes() should return error for invalid ZIP")
	}
}

func TestOpenBytes_MissingDocumentXML(t *testing.T) {
	data := buildDOCX(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
</Types>`,
	})

	_, err := OpenBytes(data)
	if err == nil {
		t.Error("OpenBytes() should return error when document.xml is missing")
	}
}

func TestOpenBytes_MalformedXML(t *testing.T) {
	_, err := OpenBytes(createTestDOCX(t, `<w:p><w:r><w:t>unclosed</w:r></w:p>`))
	if err == nil {
		t.Error("OpenBytes() should return error for malformed document.xml")
	}
}

func TestReader_Text(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "simple paragraph",
			content:  `<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>`,
			expected: "Hello World",
		},
		{
			name: "multiple paragraphs",
			content: `<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
<w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>`,
			expected: "First paragraph\nSecond paragraph",
		},
		{
			name: "multiple runs",
			content: `<w:p>
  <w:r><w:t>Hello </w:t></w:r>
  <w:r><w:t>World</w:t></w:r>
</w:p>`,
			expected: "Hello World",
		},
		{
			name:     "empty document",
			content:  ``,
			expected: "",
		},
		{
			name:     "tab between text keeps its position",
			content:  `<w:p><w:r><w:t>Borrower Name:</w:t><w:tab/><w:t>{[M558]}</w:t></w:r></w:p>`,
			expected: "Borrower Name:\t{[M558]}",
		},
		{
			name:     "line break and carriage return",
			content:  `<w:p><w:r><w:t>a</w:t><w:br/><w:t>b</w:t><w:cr/><w:t>c</w:t></w:r></w:p>`,
			expected: "a\nb\nc",
		},
		{
			name:     "page break carries no text",
			content:  `<w:p><w:r><w:t>a</w:t><w:br w:type="page"/><w:t>b</w:t></w:r></w:p>`,
			expected: "ab",
		},
		{
			name:     "hyperlink runs are not direct runs",
			content:  `<w:p><w:r><w:t>see </w:t></w:r><w:hyperlink><w:r><w:t>link</w:t></w:r></w:hyperlink></w:p>`,
			expected: "see ",
		},
		{
			name:     "table paragraphs are not body paragraphs",
			content:  `<w:p><w:r><w:t>body</w:t></w:r></w:p><w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`,
			expected: "body",
		},
		{
			name:     "preserved spaces",
			content:  `<w:p><w:r><w:t xml:space="preserve">  padded  </w:t></w:r></w:p>`,
			expected: "  padded  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustOpen(t, tt.content)
			defer r.Close()

			if got := r.Text(); got != tt.expected {
				t.Errorf("Text() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReader_RunFormatting(t *testing.T) {
	tests := []struct {
		name          string
		rPr           string
		wantBold      bool
		wantItalic    bool
		wantUnderline bool
		wantHalfPts   int
	}{
		{name: "no properties"},
		{name: "bold", rPr: `<w:b/>`, wantBold: true},
		{name: "bold off", rPr: `<w:b w:val="0"/>`},
		{name: "bold false", rPr: `<w:b w:val="false"/>`},
		{name: "bold true", rPr: `<w:b w:val="true"/>`, wantBold: true},
		{name: "italic", rPr: `<w:i/>`, wantItalic: true},
		{name: "underline single", rPr: `<w:u w:val="single"/>`, wantUnderline: true},
		{name: "underline double", rPr: `<w:u w:val="double"/>`, wantUnderline: true},
		{name: "underline none", rPr: `<w:u w:val="none"/>`},
		{name: "underline without style", rPr: `<w:u/>`},
		{name: "size", rPr: `<w:sz w:val="24"/>`, wantHalfPts: 24},
		{name: "universal measure size ignored", rPr: `<w:sz w:val="12pt"/>`},
		{name: "combined", rPr: `<w:b/><w:i/><w:u w:val="single"/><w:sz w:val="21"/>`, wantBold: true, wantItalic: true, wantUnderline: true, wantHalfPts: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustOpen(t, `<w:p><w:r><w:rPr>`+tt.rPr+`</w:rPr><w:t>x</w:t></w:r></w:p>`)
			paras := r.Paragraphs()
			if len(paras) != 1 || len(paras[0].Runs) != 1 {
				t.Fatalf("expected 1 paragraph with 1 run, got %+v", paras)
			}
			run := paras[0].Runs[0]
			if run.Bold != tt.wantBold {
				t.Errorf("Bold = %v, want %v", run.Bold, tt.wantBold)
			}
			if run.Italic != tt.wantItalic {
				t.Errorf("Italic = %v, want %v", run.Italic, tt.wantItalic)
			}
			if run.Underline != tt.wantUnderline {
				t.Errorf("Underline = %v, want %v", run.Underline, tt.wantUnderline)
			}
			if run.HalfPts != tt.wantHalfPts {
				t.Errorf("HalfPts = %d, want %d", run.HalfPts, tt.wantHalfPts)
			}
		})
	}
}

func TestRun_Points(t *testing.T) {
	tests := []struct {
		halfPts int
		want    int
	}{
		{0, 0},
		{24, 12},
		{21, 10},
		{22, 11},
	}
	for _, tt := range tests {
		if got := (Run{HalfPts: tt.halfPts}).Points(); got != tt.want {
			t.Errorf("Points() for %d half-points = %d, want %d", tt.halfPts, got, tt.want)
		}
	}
}

func TestReader_ParagraphAlignment(t *testing.T) {
	r := mustOpen(t, `
<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t>a</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>b</w:t></w:r></w:p>
<w:p><w:pPr><w:jc w:val="both"/></w:pPr><w:r><w:t>c</w:t></w:r></w:p>`)

	paras := r.Paragraphs()
	if len(paras) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(paras))
	}
	want := []string{"center", "", "both"}
	for i, p := range paras {
		if p.Alignment != want[i] {
			t.Errorf("paragraph %d Alignment = %q, want %q", i, p.Alignment, want[i])
		}
	}
	if paras[1].StyleID != "Title" {
		t.Errorf("StyleID = %q, want Title", paras[1].StyleID)
	}
}

func TestReader_EmptyRunsKept(t *testing.T) {
	r := mustOpen(t, `<w:p><w:r><w:rPr><w:b/></w:rPr></w:r><w:r><w:t>x</w:t></w:r></w:p>`)
	runs := r.Paragraphs()[0].Runs
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Text != "" || !runs[0].Bold {
		t.Errorf("first run = %+v, want empty bold run", runs[0])
	}
}
