package htmldoc

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// bannerStyle matches the inline color used by diagnostic banners.
var bannerStyle = regexp.MustCompile(`(?i)(^|;)\s*color:\s*(red|green|blue)\s*;?`)

// bannerPrefixes maps the leading text of a banner to its kind.
var bannerPrefixes = []struct {
	prefix string
	kind   BannerKind
}{
	{"Formatting error:", BannerError},
	{"✓ Simple field cleanup worked", BannerCleanupOK},
	{"❌ Simple field cleanup did NOT work", BannerCleanupFailed},
}

// bannerKind reports which banner n is, or BannerNone.
func bannerKind(n *html.Node) BannerKind {
	if n.Type != html.ElementNode || n.Data != "div" {
		return BannerNone
	}
	if !bannerStyle.MatchString(getAttr(n, "style")) {
		return BannerNone
	}

	text := getTextContent(n)
	for _, b := range bannerPrefixes {
		if strings.HasPrefix(text, b.prefix) {
			return b.kind
		}
	}
	return BannerNone
}

// getAttr returns the value of an attribute, or empty string if not found.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
