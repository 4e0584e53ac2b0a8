package feed

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/4thWaveAI/feeds/pkg/domain"
)

//go:generate moq -out mocks/item_loader.go -pkg mocks -skip-ensure -fmt goimports . ItemLoader

// ItemLoader loads canonical items of a single feed
type ItemLoader interface {
	LoadItems(ctx context.Context, url, area string) ([]domain.Item, error)
}

// Aggregator merges several feeds into one ordered, bounded list
type Aggregator struct {
	loader ItemLoader
}

// NewAggregator creates an aggregator using loader for every feed
func NewAggregator(loader ItemLoader) *Aggregator {
	return &Aggregator{loader: loader}
}

// LoadWidgetData loads all feeds concurrently and waits for every one of them.
// A single failed feed fails the whole call, no partial result is returned.
// Items are merged in feed order, sorted newest first and cut to limit (limit <= 0 keeps all).
func (a *Aggregator) LoadWidgetData(ctx context.Context, feedURLs []string, area string, limit int) ([]domain.Item, error) {
	results := make([][]domain.Item, len(feedURLs))

	// plain group, a failure must not cancel feeds still loading
	var g errgroup.Group
	for i, url := range feedURLs {
		g.Go(func() error {
			items, err := a.loader.LoadItems(ctx, url, area)
			if err != nil {
				lgr.Printf("[WARN] failed to load %s: %v", url, err)
				return fmt.Errorf("load %s: %w", url, err)
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]domain.Item, 0)
	for _, items := range results {
		merged = append(merged, items...)
	}

	sorted := SortItems(merged)
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	lgr.Printf("[DEBUG] aggregated %d items from %d feeds, returning %d", len(merged), len(feedURLs), len(sorted))
	return sorted, nil
}

// SortItems returns items ordered newest first. Items with a parseable date precede items
// without one, and ties keep their input order.
func SortItems(items []domain.Item) []domain.Item {
	type ranked struct {
		item domain.Item
		key  string
		pos  int
	}
	rs := make([]ranked, len(items))
	for i, it := range items {
		rs[i] = ranked{item: it, key: SortKey(it.PublishedAt), pos: i}
	}

	slices.SortFunc(rs, func(a, b ranked) int {
		switch {
		case a.key != "" && b.key == "":
			return -1
		case a.key == "" && b.key != "":
			return 1
		}
		if c := cmp.Compare(b.key, a.key); c != 0 {
			return c
		}
		return cmp.Compare(a.pos, b.pos)
	})

	res := make([]domain.Item, len(rs))
	for i, r := range rs {
		res[i] = r.item
	}
	return res
}
