package ncformatter

import (
	"errors"
	"strings"
)

// DefaultFileName names uploads that arrive without one.
const DefaultFileName = "document.docx"

var (
	// ErrMissingInput is returned when there are no document bytes.
	ErrMissingInput = errors.New("no file data provided")

	// ErrCapabilityUnavailable is returned when the binary was built
	// without the DOCX parser.
	ErrCapabilityUnavailable = errors.New("docx parser not available")

	// ErrParseFailure is returned when the document cannot be read. The
	// result returned with it is a failure envelope, not an HTTP error.
	ErrParseFailure = errors.New("error processing document")
)

// WarningKind identifies a non-fatal problem found during conversion.
type WarningKind int

const (
	// WarnNormalization means a normalization pass failed and the letter
	// is the unnormalized rendering behind an error banner.
	WarnNormalization WarningKind = iota

	// WarnFieldsLeft means field cleanup left a description in the letter.
	WarnFieldsLeft

	// WarnMarkdown means the Markdown preview could not be produced.
	WarnMarkdown
)

// Warning is a non-fatal problem. The result is still usable.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// FormatWarnings joins warnings into a single line.
func FormatWarnings(warnings []Warning) string {
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}
