package feed

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/4thWaveAI/feeds/pkg/domain"
)

// Loader fetches a feed and normalizes it into canonical items
type Loader struct {
	fetcher TextFetcher
}

// NewLoader creates a loader on top of a text fetcher
func NewLoader(fetcher TextFetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// LoadItems returns the items of the feed at url in document order. Only fetch failures
// are errors, undecodable or unknown documents give an empty sequence.
func (l *Loader) LoadItems(ctx context.Context, url, area string) ([]domain.Item, error) {
	raw, err := l.fetcher.FetchText(ctx, url)
	if err != nil {
		return nil, err
	}
	items := Normalize(raw, area)
	lgr.Printf("[DEBUG] loaded %d items from %s", len(items), url)
	return items, nil
}
