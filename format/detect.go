// Package format identifies the kind of file a caller uploaded, so that
// uploads which are not Word 2007+ documents can be rejected with a clear
// message before the DOCX parser sees them.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word 2007+ (.docx) document.
	DOCX
	// DOC indicates a legacy binary Word (.doc) document.
	DOC
	// RTF indicates a Rich Text Format document.
	RTF
	// PDF indicates a PDF document.
	PDF
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
	// HTML indicates an HTML document.
	HTML
)

var names = map[Format]string{
	DOCX: "DOCX",
	DOC:  "DOC",
	RTF:  "RTF",
	PDF:  "PDF",
	ODT:  "ODT",
	XLSX: "XLSX",
	PPTX: "PPTX",
	HTML: "HTML",
}

var extensions = map[string]Format{
	".docx": DOCX,
	".doc":  DOC,
	".rtf":  RTF,
	".pdf":  PDF,
	".odt":  ODT,
	".xlsx": XLSX,
	".pptx": PPTX,
	".html": HTML,
	".htm":  HTML,
}

// String returns the string representation of the format.
func (f Format) String() string {
	if name, ok := names[f]; ok {
		return name
	}
	return "Unknown"
}

// Supported reports whether documents of this format can be converted.
func (f Format) Supported() bool {
	return f == DOCX
}

// FromName determines the format from a filename extension.
func FromName(filename string) Format {
	return extensions[strings.ToLower(filepath.Ext(filename))]
}

var (
	magicZIP = []byte{0x50, 0x4B, 0x03, 0x04}
	magicCFB = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1} // OLE compound file
	magicPDF = []byte("%PDF")
	magicRTF = []byte(`{\rtf`)
)

// Sniff inspects content to determine the format. ZIP containers are
// opened to tell the Office Open XML and OpenDocument families apart.
func Sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicZIP):
		return sniffZIP(data)
	case bytes.HasPrefix(data, magicCFB):
		return DOC
	case bytes.HasPrefix(data, magicPDF):
		return PDF
	case bytes.HasPrefix(data, magicRTF):
		return RTF
	case looksLikeHTML(data):
		return HTML
	}
	return Unknown
}

// looksLikeHTML checks for a doctype or html tag after leading whitespace.
func looksLikeHTML(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}
	if len(data) > 512 {
		data = data[:512]
	}

	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	return strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML")
}

// sniffZIP inspects archive part names. A damaged archive is reported as
// Unknown; the DOCX parser produces the detailed error.
func sniffZIP(data []byte) Format {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}

	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			break
		}
		buf := make([]byte, 256)
		n, _ := rc.Read(buf)
		rc.Close()
		if strings.Contains(string(buf[:n]), "application/vnd.oasis.opendocument.text") {
			return ODT
		}
	}

	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX
		}
	}

	return Unknown
}
