// Package model provides the records produced while converting a letter
// template into annotated HTML.
//
// The types in this package are the JSON payload returned to callers, so
// their field names follow the wire format rather than Go conventions:
//
//	{"success": true, "formattedHtml": "...", "documentType": "BR010",
//	 "paragraphs": [...], "tables": [...]}
//
// # Paragraphs
//
// A [Paragraph] holds its [Run] values in document order together with an
// alignment and three derived flags:
//
//   - Bold is set only when every run carrying visible text is bold
//   - Underline and Italic are set when any run carries the flag
//
// # Tables
//
// A [Table] is a list of [TableRow] values. Each [TableCell] samples its
// bold and underline flags from the first run of its first paragraph only.
//
// # Classification
//
// [DocumentType] is a closed set of labels. It is informational and does
// not influence normalization.
package model
