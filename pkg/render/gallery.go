// Package render maps canonical items to a toolkit-neutral gallery model
// and writes that model as HTML.
package render

import (
	"strings"

	"github.com/4thWaveAI/feeds/pkg/domain"
	"github.com/4thWaveAI/feeds/pkg/feed"
)

// rendering defaults
const (
	DefaultDescriptionLimit = 180
	MaxSkeletons            = 6
	UntitledPlaceholder     = "Untitled"
	dateLayout              = "1/2/2006"
	ellipsis                = "…"
)

// MediaKind tells how a card's media block is shown
type MediaKind int

// media kinds
const (
	MediaNone MediaKind = iota
	MediaImage
	MediaVideo
)

// Media is the preview block of a card
type Media struct {
	Kind   MediaKind
	Src    string
	Poster string // video only, the item's image if any
}

// Card is the visual representation of one item
type Card struct {
	Area        string
	Title       string
	URL         string
	Description string
	Date        string // month/day/year, empty when the item has no parseable date
	Media       Media
	Video       bool
}

// Gallery is a titled grid of cards with an optional "view all" link
type Gallery struct {
	Title      string
	ViewAllURL string
	Cards      []Card
}

// Options controls gallery building
type Options struct {
	Title            string
	ViewAllURL       string
	DescriptionLimit int // in characters, zero means DefaultDescriptionLimit
}

// BuildGallery maps items to cards in order. Items are not sorted or truncated here.
func BuildGallery(items []domain.Item, opts Options) Gallery {
	limit := opts.DescriptionLimit
	if limit <= 0 {
		limit = DefaultDescriptionLimit
	}
	title := opts.Title
	if title == "" {
		title = domain.DefaultWidgetTitle
	}

	g := Gallery{Title: title, ViewAllURL: opts.ViewAllURL, Cards: make([]Card, 0, len(items))}
	for _, it := range items {
		g.Cards = append(g.Cards, buildCard(it, limit))
	}
	return g
}

func buildCard(it domain.Item, descLimit int) Card {
	c := Card{
		Area:        it.Area,
		Title:       it.Title,
		URL:         it.URL,
		Description: Truncate(it.Description, descLimit),
		Date:        FormatDate(it.PublishedAt),
		Video:       it.Video != "",
	}
	if strings.TrimSpace(c.Title) == "" {
		c.Title = UntitledPlaceholder
	}

	// video wins over image, the image becomes its poster
	switch {
	case it.Video != "":
		c.Media = Media{Kind: MediaVideo, Src: it.Video, Poster: it.Image}
	case it.Image != "":
		c.Media = Media{Kind: MediaImage, Src: it.Image}
	}
	return c
}

// Truncate cuts s to limit characters and appends an ellipsis when it was longer
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	return strings.TrimRight(string(runes[:limit]), " \t\r\n") + ellipsis
}

// FormatDate renders a raw date token as month/day/year, empty if it doesn't parse
func FormatDate(token string) string {
	t, ok := feed.ParseDate(token)
	if !ok {
		return ""
	}
	return t.Format(dateLayout)
}

// SkeletonCount clamps the requested number of placeholder cards to 0..MaxSkeletons
func SkeletonCount(n int) int {
	return max(0, min(n, MaxSkeletons))
}

// IsVideo reports a playable video block
func (m Media) IsVideo() bool { return m.Kind == MediaVideo }

// IsImage reports a lazily loaded image block
func (m Media) IsImage() bool { return m.Kind == MediaImage }
