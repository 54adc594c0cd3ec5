// Package htmldoc reads normalized letter HTML back into blocks.
//
// The normalized output is an HTML fragment made of <div> blocks, <br>
// separators and canonical tables. Some canonical blocks leave a <div>
// unclosed, so blocks are found by walking into containers rather than by
// looking only at top-level children.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Reader provides access to the blocks of a normalized letter.
type Reader struct {
	doc      *goquery.Document
	elements []Element
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenString parses an HTML fragment.
func OpenString(s string) (*Reader, error) {
	return OpenReader(strings.NewReader(s))
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{doc: doc}
	for _, body := range doc.Find("body").Nodes {
		reader.traverse(body)
	}
	return reader, nil
}

// Elements returns the blocks in document order.
func (r *Reader) Elements() []Element {
	return r.elements
}

func (r *Reader) traverse(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || shouldSkipElement(c.Data) {
			continue
		}

		switch c.Data {
		case "table":
			r.elements = append(r.elements, parseTable(c))
		case "div", "p":
			if kind := bannerKind(c); kind != BannerNone {
				r.elements = append(r.elements, Element{Kind: BlockBanner, Banner: kind, Text: getTextContent(c)})
				continue
			}
			if isBlockContainer(c) {
				r.traverse(c)
				continue
			}
			text := getTextContent(c)
			if text == "" {
				continue
			}
			r.elements = append(r.elements, Element{Kind: classifyBlock(text), Text: text})
		case "tbody", "span", "b", "u", "i":
			r.traverse(c)
		}
	}
}

func classifyBlock(text string) BlockKind {
	switch {
	case strings.Contains(text, "{Insert(H003 TagHeader)}"):
		return BlockLetterhead
	case text == "Notice of Intention to Foreclose Mortgage":
		return BlockTitle
	case strings.HasPrefix(text, "Dear "):
		return BlockSalutation
	}
	return BlockParagraph
}

// parseTable reads a table into rows of cell text.
func parseTable(table *html.Node) Element {
	elem := Element{Kind: BlockTable}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "tr":
				var row []string
				for td := c.FirstChild; td != nil; td = td.NextSibling {
					if td.Type == html.ElementNode && (td.Data == "td" || td.Data == "th") {
						row = append(row, getTextContent(td))
					}
				}
				elem.Rows = append(elem.Rows, row)
			case "thead", "tbody", "tfoot":
				walk(c)
			}
		}
	}
	walk(table)

	var lines []string
	for _, row := range elem.Rows {
		lines = append(lines, strings.Join(row, "\t"))
	}
	elem.Text = strings.Join(lines, "\n")

	switch {
	case strings.Contains(elem.Text, "Borrower Name:"):
		elem.Kind = BlockBorrowerTable
	case strings.Contains(elem.Text, "Number of Payments Due:"):
		elem.Kind = BlockPaymentTable
	}
	return elem
}

// Inspect counts the canonical blocks in the letter.
func (r *Reader) Inspect() Inspection {
	var in Inspection
	for _, e := range r.elements {
		switch e.Kind {
		case BlockBanner:
			in.Banners = append(in.Banners, e.Banner)
		case BlockLetterhead:
			in.Letterhead = true
		case BlockTitle:
			in.Title = true
		case BlockSalutation:
			in.Salutations++
		case BlockBorrowerTable:
			in.BorrowerTables++
		case BlockPaymentTable:
			in.PaymentTables++
		case BlockTable:
			in.Tables++
		case BlockParagraph:
			in.Paragraphs++
		}
	}
	return in
}

// Inspect parses s and counts its canonical blocks.
func Inspect(s string) (Inspection, error) {
	r, err := OpenString(s)
	if err != nil {
		return Inspection{}, err
	}
	return r.Inspect(), nil
}

// Text returns the letter as plain text without banners.
func (r *Reader) Text() string {
	return r.TextWithOptions(ExtractOptions{})
}

// TextWithOptions returns the letter as plain text, one block per
// paragraph separated by blank lines. Table cells are separated by tabs.
func (r *Reader) TextWithOptions(opts ExtractOptions) string {
	var parts []string
	for _, e := range r.elements {
		if e.Kind == BlockBanner && !opts.KeepBanners {
			continue
		}
		parts = append(parts, e.Text)
	}
	return strings.Join(parts, "\n\n")
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// isBlockContainer returns true if the element has block-level children.
func isBlockContainer(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "div", "p", "table":
				return true
			}
		}
	}
	return false
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}
