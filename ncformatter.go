// Package ncformatter converts foreclosure-notice Word documents into
// HTML letters ready for the template engine.
//
// Basic usage:
//
//	res, warnings, err := ncformatter.FromBytes(data, "notice.docx").Process()
//	if err != nil {
//	    // res still holds a failure envelope describing err
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", ncformatter.FormatWarnings(warnings))
//	}
//
// With options:
//
//	res, _, err := ncformatter.Open("notice.docx").
//	    Extended().
//	    WithoutDiagnostics().
//	    Markdown().
//	    Process()
//
// The lower-level packages (docx, extract, classify, render, normalize and
// htmldoc) can be used directly for individual stages.
package ncformatter

import (
	"fmt"
	"os"

	"github.com/joshuahamrick/ncformatter/model"
)

// FromBytes returns a Converter for a document held in memory. The file
// name is only used in logs and messages.
//
// Example:
//
//	res, warnings, err := ncformatter.FromBytes(data, "notice.docx").Process()
func FromBytes(data []byte, fileName string) *Converter {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Converter{
		data:     data,
		fileName: fileName,
		options:  defaultOptions(),
		logger:   nopLogger,
	}
}

// Open reads a document from disk and returns a Converter for it. A read
// error is reported by the terminal operation.
func Open(filename string) *Converter {
	data, err := os.ReadFile(filename)
	c := FromBytes(data, filename)
	if err != nil {
		c.err = fmt.Errorf("reading file: %w", err)
	}
	return c
}

// MustResult is a helper that wraps a call to Process and panics if the
// error is non-nil. It discards warnings and returns just the result.
// It is intended for use in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	res := ncformatter.MustResult(ncformatter.Open("notice.docx").Process())
func MustResult(res model.Result, _ []Warning, err error) model.Result {
	if err != nil {
		panic(err)
	}
	return res
}
