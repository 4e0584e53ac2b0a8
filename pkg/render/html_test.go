package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4thWaveAI/feeds/pkg/domain"
)

func parseFragment(t *testing.T, s string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestHTML_Gallery(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)

	items := []domain.Item{
		{Title: "Video <one>", URL: "https://x/1", Area: "robotics", Image: "https://x/1.png", Video: "https://x/1.mp4",
			Description: "desc", PublishedAt: "2024-01-01T00:00:00Z"},
		{Title: "Image", URL: "https://x/2", Image: "https://x/2.png"},
		{Title: "Bare"},
		{Title: "Script", URL: "javascript:alert(1)"},
	}
	out, err := h.Gallery(BuildGallery(items, Options{Title: "Latest robots", ViewAllURL: "https://x/all"}))
	require.NoError(t, err)
	doc := parseFragment(t, out)

	assert.Equal(t, "Latest robots", doc.Find(".feed-gallery__title").Text())
	all := doc.Find("a.feed-gallery__all")
	require.Equal(t, 1, all.Length())
	assert.Equal(t, "https://x/all", all.AttrOr("href", ""))
	assert.Equal(t, "_blank", all.AttrOr("target", ""))
	assert.Equal(t, "noopener noreferrer", all.AttrOr("rel", ""))

	cards := doc.Find("article.feed-card")
	require.Equal(t, 4, cards.Length())

	first := cards.Eq(0)
	video := first.Find("video")
	require.Equal(t, 1, video.Length())
	assert.Equal(t, "https://x/1.mp4", video.AttrOr("src", ""))
	assert.Equal(t, "https://x/1.png", video.AttrOr("poster", ""))
	assert.Equal(t, "none", video.AttrOr("preload", ""))
	_, hasControls := video.Attr("controls")
	assert.True(t, hasControls)
	assert.Equal(t, 0, first.Find("img").Length(), "video replaces the image")
	assert.Equal(t, "robotics", first.Find(".feed-card__area").Text())
	link := first.Find(".feed-card__title a")
	assert.Equal(t, "Video <one>", link.Text())
	assert.Equal(t, "https://x/1", link.AttrOr("href", ""))
	assert.Equal(t, "_blank", link.AttrOr("target", ""))
	assert.Equal(t, "noopener noreferrer", link.AttrOr("rel", ""))
	assert.Equal(t, "desc", first.Find(".feed-card__desc").Text())
	assert.Equal(t, "1/1/2024", first.Find("time").Text())
	assert.Equal(t, "Video", first.Find(".feed-card__badge").Text())

	second := cards.Eq(1)
	img := second.Find("img")
	require.Equal(t, 1, img.Length())
	assert.Equal(t, "https://x/2.png", img.AttrOr("src", ""))
	assert.Equal(t, "lazy", img.AttrOr("loading", ""))
	assert.Equal(t, 0, second.Find(".feed-card__badge").Length())
	assert.Equal(t, 0, second.Find("time").Length())

	bare := cards.Eq(2)
	assert.Equal(t, 0, bare.Find(".feed-card__media").Length())
	assert.Equal(t, 0, bare.Find(".feed-card__title a").Length(), "no link without url")
	assert.Equal(t, "Bare", strings.TrimSpace(bare.Find(".feed-card__title").Text()))

	assert.NotContains(t, cards.Eq(3).Find("a").AttrOr("href", ""), "javascript:")
}

func TestHTML_GalleryWithoutViewAll(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.WriteGallery(&buf, BuildGallery(nil, Options{})))
	doc := parseFragment(t, buf.String())
	assert.Equal(t, "Latest", doc.Find(".feed-gallery__title").Text())
	assert.Equal(t, 0, doc.Find(".feed-gallery__all").Length())
	assert.Equal(t, 0, doc.Find(".feed-card").Length())
}

func TestHTML_Skeletons(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)

	for _, tc := range []struct{ n, want int }{{0, 0}, {3, 3}, {6, 6}, {20, 6}} {
		out, err := h.Skeletons(tc.n)
		require.NoError(t, err)
		doc := parseFragment(t, out)
		assert.Equal(t, tc.want, doc.Find(".feed-card--skeleton").Length(), "n=%d", tc.n)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestHTML_WriteError(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)
	require.Error(t, h.WriteGallery(failWriter{}, Gallery{Title: "x"}))
	require.Error(t, h.WriteSkeletons(failWriter{}, 2))
}
