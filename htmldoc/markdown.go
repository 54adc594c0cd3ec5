package htmldoc

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// Markdown converts the letter to Markdown without banners.
func (r *Reader) Markdown() (string, error) {
	return r.MarkdownWithOptions(ExtractOptions{})
}

// MarkdownWithOptions converts the letter to Markdown. Merge-field
// placeholders are passed through as text.
func (r *Reader) MarkdownWithOptions(opts ExtractOptions) (string, error) {
	body := r.doc.Find("body").Clone()
	if !opts.KeepBanners {
		body.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return bannerKind(s.Nodes[0]) != BannerNone
		}).Remove()
	}

	fragment, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("serializing letter: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

// Markdown converts a normalized letter to Markdown without banners.
func Markdown(s string) (string, error) {
	r, err := OpenString(s)
	if err != nil {
		return "", err
	}
	return r.Markdown()
}
