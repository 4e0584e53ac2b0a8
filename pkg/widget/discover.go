// Package widget finds gallery containers in a host page and renders a gallery into each of them.
package widget

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"

	"github.com/4thWaveAI/feeds/pkg/domain"
)

// container attributes
const (
	attrFeedURL = "data-feed-url"
	attrMerge   = "data-merge"
	attrLimit   = "data-limit"
	attrTitle   = "data-title"
	attrArea    = "data-area"
	attrViewAll = "data-view-all"
	attrState   = "data-feed-state"

	containerSelector = "[" + attrFeedURL + "]"
)

// Container is a discovered gallery declaration and the element it renders into
type Container struct {
	Spec domain.WidgetSpec
	sel  *goquery.Selection
}

// Discover returns widget declarations of all containers in document order.
// Unset limit, title and area stay zero, defaults are applied by the caller.
func Discover(doc *goquery.Document) []domain.WidgetSpec {
	return lo.Map(discover(doc), func(c Container, _ int) domain.WidgetSpec { return c.Spec })
}

// PageFeedURLs parses a host page and returns the distinct feed URLs its containers declare
func PageFeedURLs(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return lo.Uniq(lo.FlatMap(Discover(doc), func(spec domain.WidgetSpec, _ int) []string {
		return spec.FeedURLs()
	})), nil
}

func discover(doc *goquery.Document) []Container {
	res := []Container{}
	doc.Find(containerSelector).Each(func(_ int, sel *goquery.Selection) {
		res = append(res, Container{Spec: specFromSelection(sel), sel: sel})
	})
	return res
}

func specFromSelection(sel *goquery.Selection) domain.WidgetSpec {
	spec := domain.WidgetSpec{
		FeedURL:    strings.TrimSpace(sel.AttrOr(attrFeedURL, "")),
		Merge:      ParseMergeList(sel.AttrOr(attrMerge, "")),
		Title:      strings.TrimSpace(sel.AttrOr(attrTitle, "")),
		Area:       strings.TrimSpace(sel.AttrOr(attrArea, "")),
		ViewAllURL: strings.TrimSpace(sel.AttrOr(attrViewAll, "")),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(sel.AttrOr(attrLimit, ""))); err == nil && n > 0 {
		spec.Limit = n
	}
	return spec
}

// ParseMergeList splits a comma separated list of feed URLs, dropping blanks
func ParseMergeList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(u string, _ int) string { return strings.TrimSpace(u) }))
}
