package feed

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy drops every element, the content of script and style included
var stripPolicy = bluemonday.StrictPolicy()

// StripHTML removes all markup and keeps the inline text with entities decoded.
// It is not a sanitizer for re-embedding the result as HTML.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}

// mediaKind classifies a MIME type as image or video, case-insensitively
func mediaKind(mimeType string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.HasPrefix(mt, "image/"):
		return "image"
	case strings.HasPrefix(mt, "video/"):
		return "video"
	default:
		return ""
	}
}
