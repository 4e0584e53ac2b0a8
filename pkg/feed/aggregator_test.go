package feed

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4thWaveAI/feeds/pkg/domain"
	"github.com/4thWaveAI/feeds/pkg/feed/mocks"
)

func TestSortItems(t *testing.T) {
	t.Run("dated first, newest first", func(t *testing.T) {
		items := []domain.Item{
			{Title: "t2", PublishedAt: "2024-02-01T00:00:00Z"},
			{Title: "absent"},
			{Title: "t1", PublishedAt: "Mon, 01 Jan 2024 00:00:00 GMT"},
		}
		sorted := SortItems(items)
		assert.Equal(t, []string{"t2", "t1", "absent"}, titles(sorted))
		assert.Equal(t, "t2", items[0].Title, "input is not modified")
	})

	t.Run("undated keep input order", func(t *testing.T) {
		items := []domain.Item{
			{Title: "a"},
			{Title: "b", PublishedAt: "garbage"},
			{Title: "new", PublishedAt: "2024-03-01"},
			{Title: "c"},
		}
		assert.Equal(t, []string{"new", "a", "b", "c"}, titles(SortItems(items)))
	})

	t.Run("equal timestamps keep input order", func(t *testing.T) {
		items := []domain.Item{
			{Title: "x", PublishedAt: "2024-01-01T00:00:00Z"},
			{Title: "y", PublishedAt: "Mon, 01 Jan 2024 00:00:00 GMT"},
			{Title: "z", PublishedAt: "2024-01-01T01:00:00+01:00"},
		}
		assert.Equal(t, []string{"x", "y", "z"}, titles(SortItems(items)))
	})

	t.Run("mixed zones compare in time", func(t *testing.T) {
		items := []domain.Item{
			{Title: "earlier", PublishedAt: "2024-01-01T10:00:00+05:00"}, // 05:00 utc
			{Title: "later", PublishedAt: "2024-01-01T06:00:00Z"},
		}
		assert.Equal(t, []string{"later", "earlier"}, titles(SortItems(items)))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, SortItems(nil))
	})
}

func TestAggregator_LoadWidgetData(t *testing.T) {
	t.Run("merges feeds and truncates", func(t *testing.T) {
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		loader := &mocks.ItemLoaderMock{
			LoadItemsFunc: func(_ context.Context, url, area string) ([]domain.Item, error) {
				// feed a has even hours, feed b odd hours, ten items each
				offset := 0
				if url == "https://b" {
					offset = 1
				}
				res := make([]domain.Item, 0, 10)
				for i := range 10 {
					h := i*2 + offset
					res = append(res, domain.Item{
						Title:       fmt.Sprintf("h%02d", h),
						PublishedAt: base.Add(time.Duration(h) * time.Hour).Format(time.RFC3339),
						Area:        area,
					})
				}
				return res, nil
			},
		}

		items, err := NewAggregator(loader).LoadWidgetData(context.Background(), []string{"https://a", "https://b"}, "ai", 9)
		require.NoError(t, err)
		require.Len(t, items, 9)
		assert.Equal(t, []string{"h19", "h18", "h17", "h16", "h15", "h14", "h13", "h12", "h11"}, titles(items))
		assert.Len(t, loader.LoadItemsCalls(), 2)
		for _, c := range loader.LoadItemsCalls() {
			assert.Equal(t, "ai", c.Area)
		}
	})

	t.Run("limit larger than items or zero keeps all", func(t *testing.T) {
		loader := &mocks.ItemLoaderMock{
			LoadItemsFunc: func(context.Context, string, string) ([]domain.Item, error) {
				return []domain.Item{{Title: "a"}, {Title: "b"}}, nil
			},
		}
		agg := NewAggregator(loader)

		items, err := agg.LoadWidgetData(context.Background(), []string{"u"}, "", 9)
		require.NoError(t, err)
		assert.Len(t, items, 2)

		items, err = agg.LoadWidgetData(context.Background(), []string{"u", "v"}, "", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "a", "b"}, titles(items), "undated items keep feed order")
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		loader := &mocks.ItemLoaderMock{
			LoadItemsFunc: func(context.Context, string, string) ([]domain.Item, error) {
				return []domain.Item{{Title: "same", URL: "https://same"}}, nil
			},
		}
		items, err := NewAggregator(loader).LoadWidgetData(context.Background(), []string{"a", "b", "c"}, "", 9)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("one failing feed aborts the whole load", func(t *testing.T) {
		var finished atomic.Int32
		loader := &mocks.ItemLoaderMock{
			LoadItemsFunc: func(ctx context.Context, url, _ string) ([]domain.Item, error) {
				if url == "https://broken" {
					return nil, errors.New("connection refused")
				}
				time.Sleep(20 * time.Millisecond)
				finished.Add(1)
				assert.NoError(t, ctx.Err(), "other feeds are not cancelled")
				return make([]domain.Item, 5), nil
			},
		}

		items, err := NewAggregator(loader).LoadWidgetData(context.Background(), []string{"https://ok", "https://broken"}, "", 9)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load https://broken")
		assert.Contains(t, err.Error(), "connection refused")
		assert.Nil(t, items, "no partial result")
		assert.Equal(t, int32(1), finished.Load(), "healthy feed ran to completion")
	})

	t.Run("feeds are fetched concurrently", func(t *testing.T) {
		var inFlight, peak atomic.Int32
		loader := &mocks.ItemLoaderMock{
			LoadItemsFunc: func(context.Context, string, string) ([]domain.Item, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(30 * time.Millisecond)
				inFlight.Add(-1)
				return nil, nil
			},
		}
		_, err := NewAggregator(loader).LoadWidgetData(context.Background(), []string{"a", "b", "c"}, "", 9)
		require.NoError(t, err)
		assert.Equal(t, int32(3), peak.Load())
	})

	t.Run("no feeds", func(t *testing.T) {
		loader := &mocks.ItemLoaderMock{}
		items, err := NewAggregator(loader).LoadWidgetData(context.Background(), nil, "", 9)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func titles(items []domain.Item) []string {
	res := make([]string, 0, len(items))
	for _, it := range items {
		res = append(res, it.Title)
	}
	return res
}
