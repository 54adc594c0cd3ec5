package docx

import (
	"strconv"
	"strings"
)

// Table is a body table laid out on its column grid.
type Table struct {
	StyleID string
	Rows    []Row
}

// Row holds one entry per grid column. A cell spanning several columns,
// or continuing a vertical merge, appears once per column it covers, so
// the same *Cell may occur more than once.
type Row struct {
	Cells []*Cell
}

// Cell is a table cell and its paragraphs.
type Cell struct {
	Paragraphs []Paragraph
	ColSpan    int
	RowSpan    int
}

// Text returns the paragraph texts joined by newlines. Empty paragraphs
// still contribute a line.
func (c *Cell) Text() string {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		parts = append(parts, p.Text())
	}
	return strings.Join(parts, "\n")
}

// convertTable lays a table element out on its grid, expanding column
// spans and resolving vertical merge continuations to the cell above.
func convertTable(tbl tableXML) Table {
	parsed := Table{
		StyleID: tbl.Properties.Style.Val,
		Rows:    make([]Row, 0, len(tbl.Rows)),
	}

	for rowIdx, row := range tbl.Rows {
		var cells []*Cell
		for _, tc := range row.Cells {
			span := parseSpan(tc.Properties.GridSpan.Val)
			col := len(cells)

			var cell *Cell
			if tc.Properties.VMerge.continues() && rowIdx > 0 {
				cell = cellAt(parsed.Rows[rowIdx-1], col)
				if cell != nil {
					cell.RowSpan++
				}
			}
			if cell == nil {
				cell = convertCell(tc, span)
			}

			for i := 0; i < span; i++ {
				cells = append(cells, cell)
			}
		}
		parsed.Rows = append(parsed.Rows, Row{Cells: cells})
	}

	return parsed
}

func convertCell(tc tableCellXML, span int) *Cell {
	cell := &Cell{
		ColSpan:    span,
		RowSpan:    1,
		Paragraphs: make([]Paragraph, 0, len(tc.Paragraphs)),
	}
	for _, p := range tc.Paragraphs {
		cell.Paragraphs = append(cell.Paragraphs, convertParagraph(p))
	}
	return cell
}

// cellAt returns the cell covering the given grid column, or nil.
func cellAt(row Row, col int) *Cell {
	if col < 0 || col >= len(row.Cells) {
		return nil
	}
	return row.Cells[col]
}

func parseSpan(s string) int {
	if s == "" {
		return 1
	}
	if span, err := strconv.Atoi(s); err == nil && span > 0 {
		return span
	}
	return 1
}
