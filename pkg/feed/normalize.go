package feed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-pkgz/lgr"
	jsoniter "github.com/json-iterator/go"
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"

	"github.com/4thWaveAI/feeds/pkg/domain"
)

// Normalize turns raw feed text into canonical items. It never fails: malformed and
// unknown documents produce an empty sequence. A JSON Feed that can't be decoded
// is retried as XML.
func Normalize(raw, area string) []domain.Item {
	format := Detect(raw)
	if format == FormatJSONFeed {
		items, err := normalizeJSONFeed(raw, area)
		if err == nil {
			normalizedItems.WithLabelValues(format.String()).Add(float64(len(items)))
			return items
		}
		lgr.Printf("[DEBUG] json feed decode failed, trying xml: %v", err)
		format = detectXML(raw)
	}

	var items []domain.Item
	var err error
	switch format {
	case FormatRSS:
		items, err = normalizeRSS(raw, area)
	case FormatAtom:
		items, err = normalizeAtom(raw, area)
	default:
		return []domain.Item{}
	}
	if err != nil {
		lgr.Printf("[DEBUG] %s feed decode failed: %v", format, err)
		return []domain.Item{}
	}
	normalizedItems.WithLabelValues(format.String()).Add(float64(len(items)))
	return items
}

// normalizeJSONFeed maps JSON Feed items. Area is always the caller's label.
func normalizeJSONFeed(raw, area string) ([]domain.Item, error) {
	var doc JSONFeed
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode json feed: %w", err)
	}

	items := make([]domain.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		item := domain.Item{
			Title:       it.Title,
			URL:         firstNonEmpty(it.URL, it.ExternalURL),
			Description: firstNonEmpty(it.ContentText, it.Summary),
			PublishedAt: it.DatePublished,
			Area:        area,
		}
		for _, a := range it.Attachments {
			setMedia(&item, a.URL, a.MimeType)
		}
		items = append(items, item)
	}
	return items, nil
}

// normalizeRSS maps items of the first rss element. The first non-empty category overrides
// the area, namespaced children such as media:title are extensions and never replace item fields.
func normalizeRSS(raw, area string) ([]domain.Item, error) {
	start, err := rootOffset(raw, func(n xml.Name) bool { return n.Local == "rss" })
	if err != nil {
		return nil, err
	}
	parser := rss.Parser{}
	doc, err := parser.Parse(strings.NewReader(raw[start:]))
	if err != nil {
		return nil, fmt.Errorf("decode rss: %w", err)
	}

	items := make([]domain.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		if it == nil {
			continue
		}
		item := domain.Item{
			Title:       strings.TrimSpace(it.Title),
			URL:         strings.TrimSpace(it.Link),
			Description: StripHTML(it.Description),
			PublishedAt: strings.TrimSpace(it.PubDate),
			Area:        area,
		}
		if len(it.Categories) > 0 && it.Categories[0] != nil {
			if category := strings.TrimSpace(it.Categories[0].Value); category != "" {
				item.Area = category
			}
		}
		for _, enc := range it.Enclosures {
			if enc != nil {
				setMedia(&item, strings.TrimSpace(enc.URL), enc.Type)
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// normalizeAtom maps entry elements of the first feed element. Enclosures are not read,
// so image and video stay empty.
func normalizeAtom(raw, area string) ([]domain.Item, error) {
	start, err := rootOffset(raw, func(n xml.Name) bool {
		return n.Local == "feed" && (n.Space == "" || n.Space == atomNS)
	})
	if err != nil {
		return nil, err
	}
	parser := atom.Parser{}
	doc, err := parser.Parse(strings.NewReader(raw[start:]))
	if err != nil {
		return nil, fmt.Errorf("decode atom: %w", err)
	}

	items := make([]domain.Item, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		item := domain.Item{
			Title:       strings.TrimSpace(entry.Title),
			URL:         atomEntryURL(entry.Links),
			PublishedAt: strings.TrimSpace(entry.Updated),
			Area:        area,
		}
		switch {
		case strings.TrimSpace(entry.Summary) != "":
			item.Description = StripHTML(entry.Summary)
		case entry.Content != nil:
			item.Description = StripHTML(entry.Content.Value)
		}
		items = append(items, item)
	}
	return items, nil
}

// rootOffset returns the byte offset of the first element accepted by match.
// Parsing from there skips wrapper elements and the xml declaration.
func rootOffset(raw string, match func(xml.Name) bool) (int, error) {
	dec := newXMLDecoder(raw)
	for {
		offset := dec.InputOffset()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("no feed root element")
		}
		if err != nil {
			return 0, fmt.Errorf("read xml: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok && match(se.Name) {
			// the text is already utf-8 whatever the declaration says
			return int(offset), nil
		}
	}
}

// atomEntryURL picks the alternate link with an HTML or undeclared type,
// falling back to the first link. A link without rel is an alternate link.
func atomEntryURL(links []*atom.Link) string {
	for _, l := range links {
		if l == nil {
			continue
		}
		rel := strings.ToLower(strings.TrimSpace(l.Rel))
		typ := strings.ToLower(strings.TrimSpace(l.Type))
		if (rel == "" || rel == "alternate") && (typ == "" || strings.Contains(typ, "html")) {
			return strings.TrimSpace(l.Href)
		}
	}
	for _, l := range links {
		if l != nil {
			return strings.TrimSpace(l.Href)
		}
	}
	return ""
}

// setMedia records url as the item's image or video unless that kind is already set
func setMedia(item *domain.Item, url, mimeType string) {
	if url == "" {
		return
	}
	switch mediaKind(mimeType) {
	case "image":
		if item.Image == "" {
			item.Image = url
		}
	case "video":
		if item.Video == "" {
			item.Video = url
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
