// Package render serializes extracted paragraphs into the HTML that the
// normalization pipeline rewrites.
//
// Each non-blank paragraph becomes one <div>. Blocks are separated by a
// <br> on its own line:
//
//	<div style="text-align: center"><b>Title</b></div>
//	<br>
//	<div>Body</div>
//
// Run text is inserted verbatim. The rewrite rules match the raw document
// text, so nothing is escaped.
package render

import (
	"strings"

	"github.com/joshuahamrick/ncformatter/model"
)

// Separator joins rendered blocks.
const Separator = "\n<br>\n"

// Options controls rendering.
type Options struct {
	// IncludeTables appends the extracted tables after the paragraphs.
	// By default tables are extracted but never rendered.
	IncludeTables bool
}

// HTML renders paragraphs, and tables when enabled, into one string.
func HTML(paras []model.Paragraph, tables []model.Table, opts Options) string {
	blocks := make([]string, 0, len(paras))
	for _, p := range paras {
		if p.IsBlank() {
			continue
		}
		blocks = append(blocks, Block(p))
	}

	if opts.IncludeTables {
		for _, t := range tables {
			if len(t.Rows) == 0 {
				continue
			}
			blocks = append(blocks, Table(t))
		}
	}

	return strings.Join(blocks, Separator)
}

// Block renders one paragraph as a <div>. The div carries text-align when
// the paragraph is not left aligned, and font-size when every sized run
// agrees on one size.
func Block(p model.Paragraph) string {
	var styles []string
	if p.Alignment != "" && p.Alignment != model.AlignLeft {
		styles = append(styles, "text-align: "+p.Alignment)
	}
	if size := p.UniformSize(); size != "" {
		styles = append(styles, "font-size: "+size)
	}

	var sb strings.Builder
	sb.WriteString("<div")
	if len(styles) > 0 {
		sb.WriteString(` style="`)
		sb.WriteString(strings.Join(styles, "; "))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(Runs(p.Runs))
	sb.WriteString("</div>")
	return sb.String()
}

// Runs renders runs in order, skipping those without text.
func Runs(runs []model.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(Run(r))
	}
	return sb.String()
}

// Run wraps a run's text in <b>, then <u>, then <i> as flagged, and the
// result in a font-size span when the run is sized. An empty run renders
// as nothing.
func Run(r model.Run) string {
	text := r.Text
	if text == "" {
		return ""
	}
	if r.Bold {
		text = "<b>" + text + "</b>"
	}
	if r.Underline {
		text = "<u>" + text + "</u>"
	}
	if r.Italic {
		text = "<i>" + text + "</i>"
	}
	if size := r.Size(); size != "" {
		text = `<span style="font-size: ` + size + `">` + text + "</span>"
	}
	return text
}

// Table renders a table in the same shape the pipeline uses for the
// tables it inserts. Cell newlines become <br>.
func Table(t model.Table) string {
	var sb strings.Builder
	sb.WriteString(`<div><table width="100%" style="border-collapse: collapse"><tbody>`)
	for i, row := range t.Rows {
		if i == 0 {
			sb.WriteString("<tr>\n")
		} else {
			sb.WriteString("  </tr><tr>\n")
		}
		for _, c := range row.Cells {
			sb.WriteString(cell(c))
		}
	}
	sb.WriteString("</tr></tbody></table></div>")
	return sb.String()
}

func cell(c model.TableCell) string {
	text := strings.ReplaceAll(c.Text, "\n", "<br>")
	if text != "" {
		if c.Bold {
			text = "<b>" + text + "</b>"
		}
		if c.Underline {
			text = "<u>" + text + "</u>"
		}
	}

	open := "  <td>"
	if c.Alignment != "" && c.Alignment != model.AlignLeft {
		open = `  <td style="text-align: ` + c.Alignment + `">`
	}
	return open + text + "</td>\n"
}
