package model

// TableCell is a single cell. Bold and Underline come from the lead run of
// the cell's first paragraph only.
type TableCell struct {
	Text      string  `json:"text"`
	Width     *string `json:"width"` // never populated
	Alignment string  `json:"alignment"`
	Bold      bool    `json:"bold"`
	Underline bool    `json:"underline"`
}

// NewTableCell returns a cell with default formatting.
func NewTableCell(text string) TableCell {
	return TableCell{
		Text:      text,
		Alignment: AlignLeft,
	}
}

// TableRow is an ordered list of cells.
type TableRow struct {
	Cells []TableCell `json:"cells"`
}

// Table is an ordered list of rows with fixed rendering metadata.
type Table struct {
	Rows           []TableRow `json:"rows"`
	Width          string     `json:"width"`
	BorderCollapse bool       `json:"borderCollapse"`
}

// NewTable creates an empty table with the fixed metadata.
func NewTable() Table {
	return Table{
		Rows:           []TableRow{},
		Width:          "100%",
		BorderCollapse: true,
	}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...TableCell) {
	if cells == nil {
		cells = []TableCell{}
	}
	t.Rows = append(t.Rows, TableRow{Cells: cells})
}

// RowCount returns the number of rows
func (t Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the widest row's cell count.
func (t Table) ColCount() int {
	n := 0
	for _, row := range t.Rows {
		if len(row.Cells) > n {
			n = len(row.Cells)
		}
	}
	return n
}
