package docx

import (
	"encoding/xml"
	"strings"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Only direct children are collected;
// paragraphs inside content controls or text boxes are not part of the body.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	Tables     []tableXML     `xml:"tbl"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name          `xml:"p"`
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"` // hyperlink runs are not direct children
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         styleRefXML      `xml:"pStyle"`
	Justification justificationXML `xml:"jc"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // left, start, center, right, end, both, distribute
}

// runXML represents a text run (<w:r>). Its content is decoded in document
// order, so interleaved text, tabs and breaks keep their positions.
type runXML struct {
	Properties runPropsXML
	content    []string
}

// UnmarshalXML decodes the run properties and the ordered run content.
func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "rPr":
				if err := d.DecodeElement(&r.Properties, &el); err != nil {
					return err
				}
			case "t":
				var s string
				if err := d.DecodeElement(&s, &el); err != nil {
					return err
				}
				r.content = append(r.content, s)
			case "tab", "ptab":
				r.content = append(r.content, "\t")
				if err := d.Skip(); err != nil {
					return err
				}
			case "br":
				// Page and column breaks carry no text.
				if breakType(el) == "" || breakType(el) == "textWrapping" {
					r.content = append(r.content, "\n")
				}
				if err := d.Skip(); err != nil {
					return err
				}
			case "cr":
				r.content = append(r.content, "\n")
				if err := d.Skip(); err != nil {
					return err
				}
			case "noBreakHyphen":
				r.content = append(r.content, "-")
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// Text returns the run's text content.
func (r runXML) Text() string {
	return strings.Join(r.content, "")
}

func breakType(el xml.StartElement) string {
	for _, a := range el.Attr {
		if a.Name.Local == "type" {
			return a.Value
		}
	}
	return ""
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold      onOffXML     `xml:"b"`
	Italic    onOffXML     `xml:"i"`
	Underline underlineXML `xml:"u"`
	FontSize  sizeXML      `xml:"sz"`
}

// onOffXML represents a toggle property such as <w:b/> or <w:i w:val="0"/>.
type onOffXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// Set reports whether the element was present.
func (o onOffXML) Set() bool {
	return o.XMLName.Local != ""
}

// On reports whether the toggle is present and not switched off.
func (o onOffXML) On() bool {
	if !o.Set() {
		return false
	}
	switch strings.ToLower(o.Val) {
	case "0", "false", "off":
		return false
	}
	return true
}

// underlineXML represents underline style.
type underlineXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"` // single, double, none, etc.
}

// On reports whether the run is underlined. An element without a style
// value does not underline.
func (u underlineXML) On() bool {
	if u.XMLName.Local == "" || u.Val == "" {
		return false
	}
	return u.Val != "none"
}

// sizeXML represents font size (in half-points).
type sizeXML struct {
	Val string `xml:"val,attr"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName    xml.Name      `xml:"tbl"`
	Properties tablePropsXML `xml:"tblPr"`
	Grid       tableGridXML  `xml:"tblGrid"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties.
type tablePropsXML struct {
	Style styleRefXML `xml:"tblStyle"`
}

// tableGridXML represents table grid definition.
type tableGridXML struct {
	Cols []gridColXML `xml:"gridCol"`
}

// gridColXML represents a grid column.
type gridColXML struct {
	W string `xml:"w,attr"` // Width in twips
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName xml.Name       `xml:"tr"`
	Cells   []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	XMLName    xml.Name       `xml:"tc"`
	Properties cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// cellPropsXML represents cell properties.
type cellPropsXML struct {
	GridSpan gridSpanXML `xml:"gridSpan"`
	VMerge   vMergeXML   `xml:"vMerge"`
}

// gridSpanXML represents column span.
type gridSpanXML struct {
	Val string `xml:"val,attr"` // Number of columns spanned
}

// vMergeXML represents vertical merge.
type vMergeXML struct {
	XMLName xml.Name `xml:"vMerge"`
	Val     string   `xml:"val,attr"` // "restart", "continue" or empty (continue)
}

// continues reports whether the cell continues a vertical merge from the row above.
func (v vMergeXML) continues() bool {
	return v.XMLName.Local != "" && (v.Val == "" || v.Val == "continue")
}
