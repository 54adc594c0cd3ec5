package docx

import "errors"

// ErrDOCXNotEnabled is returned when documents are opened in a build made
// with the "nodocx" tag.
var ErrDOCXNotEnabled = errors.New("docx parser not available")

// Available reports whether DOCX parsing is compiled into this binary.
// The answer is fixed at build time.
func Available() bool {
	return available
}
