package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuahamrick/ncformatter/docx"
	"github.com/joshuahamrick/ncformatter/model"
)

type fakeSource struct {
	paras  []docx.Paragraph
	tables []docx.Table
}

func (f fakeSource) Paragraphs() []docx.Paragraph { return f.paras }
func (f fakeSource) Tables() []docx.Table         { return f.tables }

func TestAlignment(t *testing.T) {
	tests := []struct {
		jc   string
		want string
	}{
		{"", model.AlignLeft},
		{"left", model.AlignLeft},
		{"start", model.AlignLeft},
		{"center", model.AlignCenter},
		{"right", model.AlignRight},
		{"end", model.AlignRight},
		{"both", model.AlignJustify},
		{"distribute", model.AlignLeft},
	}
	for _, tt := range tests {
		t.Run(tt.jc, func(t *testing.T) {
			assert.Equal(t, tt.want, Alignment(tt.jc))
		})
	}
}

func TestRunFontSize(t *testing.T) {
	tests := []struct {
		name    string
		halfPts int
		want    *string
	}{
		{"unset stays nil", 0, nil},
		{"whole points", 24, strPtr("12pt")},
		{"half points truncate", 21, strPtr("10pt")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Run(docx.Run{Text: "x", HalfPts: tt.halfPts})
			assert.Equal(t, tt.want, got.FontSize)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestParagraph(t *testing.T) {
	p := Paragraph(docx.Paragraph{
		Alignment: "both",
		Runs: []docx.Run{
			{Text: "Dear ", Bold: true},
			{Text: "", Italic: true},
			{Text: "{[M558]}", Bold: true, Underline: true},
		},
	})

	assert.Equal(t, "Dear {[M558]}", p.Text)
	assert.Equal(t, model.AlignJustify, p.Alignment)
	assert.Len(t, p.Runs, 3, "runs without text are kept")
	assert.True(t, p.Bold)
	assert.True(t, p.Underline)
	assert.True(t, p.Italic)
	assert.Nil(t, p.FontSize)
}

func TestCellSamplesLeadRunOnly(t *testing.T) {
	c := &docx.Cell{
		Paragraphs: []docx.Paragraph{
			{Runs: []docx.Run{{Text: "Label", Bold: false}, {Text: " value", Bold: true, Underline: true}}},
			{Runs: []docx.Run{{Text: "second", Bold: true}}},
		},
	}

	cell := Cell(c)
	assert.Equal(t, "Label value\nsecond", cell.Text)
	assert.False(t, cell.Bold)
	assert.False(t, cell.Underline)
	assert.Equal(t, model.AlignLeft, cell.Alignment)
	assert.Nil(t, cell.Width)
}

func TestCellDefaults(t *testing.T) {
	tests := []struct {
		name string
		cell *docx.Cell
	}{
		{"nil cell", nil},
		{"zero paragraphs", &docx.Cell{}},
		{"first paragraph without runs", &docx.Cell{Paragraphs: []docx.Paragraph{{}, {Runs: []docx.Run{{Text: "x", Bold: true}}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.TableCell
			require.NotPanics(t, func() { got = Cell(tt.cell) })
			assert.False(t, got.Bold)
			assert.False(t, got.Underline)
			assert.Equal(t, "left", got.Alignment)
		})
	}
}

func TestDocument(t *testing.T) {
	shared := &docx.Cell{ColSpan: 2, Paragraphs: []docx.Paragraph{{Runs: []docx.Run{{Text: "Wide", Bold: true}}}}}
	src := fakeSource{
		paras: []docx.Paragraph{
			{Runs: []docx.Run{{Text: "one"}}},
			{},
		},
		tables: []docx.Table{
			{Rows: []docx.Row{{Cells: []*docx.Cell{shared, shared}}}},
		},
	}

	paras, tables := Document(src)
	require.Len(t, paras, 2)
	assert.Equal(t, "one", paras[0].Text)
	assert.Equal(t, "", paras[1].Text)
	assert.NotNil(t, paras[1].Runs)

	require.Len(t, tables, 1)
	tbl := tables[0]
	assert.Equal(t, "100%", tbl.Width)
	assert.True(t, tbl.BorderCollapse)
	require.Len(t, tbl.Rows, 1)
	require.Len(t, tbl.Rows[0].Cells, 2, "spanning cell repeats per grid column")
	assert.Equal(t, tbl.Rows[0].Cells[0], tbl.Rows[0].Cells[1])
	assert.True(t, tbl.Rows[0].Cells[0].Bold)
}
