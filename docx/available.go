//go:build !nodocx

package docx

// available reports that the DOCX parser is compiled in.
const available = true
