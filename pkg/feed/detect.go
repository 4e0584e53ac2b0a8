package feed

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Format is the detected kind of a feed document
type Format int

// supported formats
const (
	FormatUnknown Format = iota
	FormatJSONFeed
	FormatRSS
	FormatAtom
)

// sniffLen is how much of the document is inspected for the JSON Feed opening brace
const sniffLen = 200

func (f Format) String() string {
	switch f {
	case FormatJSONFeed:
		return "jsonfeed"
	case FormatRSS:
		return "rss"
	case FormatAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// Detect classifies raw feed text. It never parses items, only decides which normalizer applies.
// Text that looks like a JSON Feed but is not valid JSON is classified as XML would be.
// Malformed XML and documents without rss or feed elements are FormatUnknown.
func Detect(raw string) Format {
	if looksLikeJSONFeed(raw) && jsoniter.Valid([]byte(raw)) {
		return FormatJSONFeed
	}
	return detectXML(raw)
}

// looksLikeJSONFeed checks the opening brace and the version and jsonfeed markers
func looksLikeJSONFeed(raw string) bool {
	text := strings.TrimLeft(raw, " \t\r\n\ufeff")
	head := text
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if !strings.HasPrefix(strings.ToLower(head), "{") {
		return false
	}
	lower := strings.ToLower(text)
	return strings.Contains(lower, `"version"`) && strings.Contains(lower, "jsonfeed")
}

// detectXML scans the whole document, the first rss or feed element decides the format.
// Any syntax error makes the document unknown.
func detectXML(raw string) Format {
	dec := newXMLDecoder(raw)
	format := FormatUnknown
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return format
		}
		if err != nil {
			return FormatUnknown
		}
		se, ok := tok.(xml.StartElement)
		if !ok || format != FormatUnknown {
			continue
		}
		switch {
		case se.Name.Local == "rss":
			format = FormatRSS
		case se.Name.Local == "feed" && (se.Name.Space == "" || se.Name.Space == atomNS):
			format = FormatAtom
		}
	}
}

// newXMLDecoder makes a strict decoder over text that is already UTF-8,
// so declared encodings are read as is.
func newXMLDecoder(raw string) *xml.Decoder {
	dec := xml.NewDecoder(strings.NewReader(raw))
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) { return input, nil }
	return dec
}
