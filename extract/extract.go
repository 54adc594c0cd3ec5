// Package extract turns parsed DOCX content into the paragraph and table
// records returned to callers.
package extract

import (
	"fmt"

	"github.com/joshuahamrick/ncformatter/docx"
	"github.com/joshuahamrick/ncformatter/model"
)

// Source is a parsed document body.
type Source interface {
	Paragraphs() []docx.Paragraph
	Tables() []docx.Table
}

var _ Source = (*docx.Reader)(nil)

// Document extracts every body paragraph and table in document order.
func Document(src Source) ([]model.Paragraph, []model.Table) {
	paras := make([]model.Paragraph, 0, len(src.Paragraphs()))
	for _, p := range src.Paragraphs() {
		paras = append(paras, Paragraph(p))
	}

	tables := make([]model.Table, 0, len(src.Tables()))
	for _, t := range src.Tables() {
		tables = append(tables, Table(t))
	}

	return paras, tables
}

// Paragraph converts one paragraph. Every run is kept, including runs
// without text, and the paragraph text is the runs' text concatenated.
func Paragraph(p docx.Paragraph) model.Paragraph {
	runs := make([]model.Run, 0, len(p.Runs))
	for _, r := range p.Runs {
		runs = append(runs, Run(r))
	}
	return model.NewParagraph(Alignment(p.Alignment), runs)
}

// Run converts one run. A run without a declared size keeps a nil size.
func Run(r docx.Run) model.Run {
	run := model.Run{
		Text:      r.Text,
		Bold:      r.Bold,
		Underline: r.Underline,
		Italic:    r.Italic,
	}
	if r.HalfPts > 0 {
		size := fmt.Sprintf("%dpt", r.Points())
		run.FontSize = &size
	}
	return run
}

// Alignment maps a w:jc value onto the four supported alignments.
// Anything unrecognised, including an unset value, is left.
func Alignment(jc string) string {
	switch jc {
	case "center":
		return model.AlignCenter
	case "right", "end":
		return model.AlignRight
	case "both":
		return model.AlignJustify
	}
	return model.AlignLeft
}

// Table converts one table. Cells are emitted per grid column, so a
// spanning cell repeats. Each cell's bold and underline flags are sampled
// from the first run of its first paragraph only.
func Table(t docx.Table) model.Table {
	table := model.NewTable()
	for _, row := range t.Rows {
		cells := make([]model.TableCell, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, Cell(c))
		}
		table.AddRow(cells...)
	}
	return table
}

// Cell converts one cell. A cell with no paragraphs, or whose first
// paragraph has no runs, keeps default formatting.
func Cell(c *docx.Cell) model.TableCell {
	if c == nil {
		return model.NewTableCell("")
	}

	cell := model.NewTableCell(c.Text())
	if len(c.Paragraphs) > 0 && len(c.Paragraphs[0].Runs) > 0 {
		lead := c.Paragraphs[0].Runs[0]
		cell.Bold = lead.Bold
		cell.Underline = lead.Underline
	}
	return cell
}
