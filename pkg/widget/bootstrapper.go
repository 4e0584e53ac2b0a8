package widget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/4thWaveAI/feeds/pkg/domain"
	"github.com/4thWaveAI/feeds/pkg/render"
)

//go:generate moq -out mocks/data_loader.go -pkg mocks -skip-ensure -fmt goimports . DataLoader
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer

// DataLoader loads the merged, sorted and truncated items of a widget
type DataLoader interface {
	LoadWidgetData(ctx context.Context, feedURLs []string, area string, limit int) ([]domain.Item, error)
}

// Renderer produces gallery and placeholder markup
type Renderer interface {
	Gallery(g render.Gallery) (string, error)
	Skeletons(n int) (string, error)
}

// ErrNoFeeds is returned for a widget without any feed URL
var ErrNoFeeds = errors.New("no feed urls")

// container states written to attrState
const (
	stateLoading = "loading"
	stateLoaded  = "loaded"
	stateFailed  = "failed"
)

// Defaults are applied to widget declarations that don't set their own values
type Defaults struct {
	Limit int
	Title string
	Area  string
}

// Params configures Bootstrapper
type Params struct {
	Loader           DataLoader
	Renderer         Renderer
	Defaults         Defaults
	Skeletons        int // placeholder cards shown while loading, clamped to render.MaxSkeletons
	DescriptionLimit int
}

// Bootstrapper drives one load cycle per discovered container
type Bootstrapper struct {
	Params
}

// Result summarizes one Run
type Result struct {
	Containers int
	Rendered   int
	Failed     int
}

// New makes a bootstrapper, zero defaults fall back to the standard limit and title
func New(params Params) *Bootstrapper {
	if params.Defaults.Limit <= 0 {
		params.Defaults.Limit = domain.DefaultWidgetLimit
	}
	if params.Defaults.Title == "" {
		params.Defaults.Title = domain.DefaultWidgetTitle
	}
	return &Bootstrapper{Params: params}
}

// Resolve fills unset fields of spec with the configured defaults
func (b *Bootstrapper) Resolve(spec domain.WidgetSpec) domain.WidgetSpec {
	if spec.Limit <= 0 {
		spec.Limit = b.Defaults.Limit
	}
	if spec.Title == "" {
		spec.Title = b.Defaults.Title
	}
	if spec.Area == "" {
		spec.Area = b.Defaults.Area
	}
	return spec.WithDefaults()
}

// Items loads the items of a single widget
func (b *Bootstrapper) Items(ctx context.Context, spec domain.WidgetSpec) ([]domain.Item, error) {
	spec = b.Resolve(spec)
	urls := spec.FeedURLs()
	if len(urls) == 0 {
		return nil, ErrNoFeeds
	}
	return b.Loader.LoadWidgetData(ctx, urls, spec.Area, spec.Limit)
}

// Gallery loads a widget and returns its rendered gallery markup
func (b *Bootstrapper) Gallery(ctx context.Context, spec domain.WidgetSpec) (string, error) {
	spec = b.Resolve(spec)
	items, err := b.Items(ctx, spec)
	if err != nil {
		return "", err
	}
	return b.Renderer.Gallery(render.BuildGallery(items, render.Options{
		Title:            spec.Title,
		ViewAllURL:       spec.ViewAllURL,
		DescriptionLimit: b.DescriptionLimit,
	}))
}

// Run renders every container of doc. Skeletons are inserted first, then all containers load
// concurrently and each one is replaced by its gallery when it succeeds. A failed container is
// logged and keeps its skeletons, other containers are not affected.
func (b *Bootstrapper) Run(ctx context.Context, doc *goquery.Document) Result {
	containers := discover(doc)
	res := Result{Containers: len(containers)}
	if len(containers) == 0 {
		return res
	}

	skeletons, err := b.Renderer.Skeletons(b.Skeletons)
	if err != nil {
		lgr.Printf("[WARN] failed to render skeletons: %v", err)
	}
	for _, c := range containers {
		if err == nil {
			c.sel.SetHtml(skeletons)
		}
		c.sel.SetAttr(attrState, stateLoading)
	}

	// the document tree is not safe for concurrent writes
	var mu sync.Mutex
	var g errgroup.Group
	for _, c := range containers {
		g.Go(func() error {
			markup, err := b.Gallery(ctx, c.Spec)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				lgr.Printf("[WARN] widget %s failed: %v", c.Spec.FeedURL, err)
				widgetRenders.WithLabelValues(stateFailed).Inc()
				c.sel.SetAttr(attrState, stateFailed)
				res.Failed++
				return nil
			}
			c.sel.SetHtml(markup)
			c.sel.SetAttr(attrState, stateLoaded)
			widgetRenders.WithLabelValues(stateLoaded).Inc()
			res.Rendered++
			return nil
		})
	}
	_ = g.Wait() // failures are per container

	lgr.Printf("[DEBUG] widgets: %d containers, %d rendered, %d failed", res.Containers, res.Rendered, res.Failed)
	return res
}

// RenderPage reads a host page, renders all its widgets and writes the resulting page
func (b *Bootstrapper) RenderPage(ctx context.Context, r io.Reader, w io.Writer) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("parse page: %w", err)
	}
	res := b.Run(ctx, doc)

	page, err := doc.Html()
	if err != nil {
		return res, fmt.Errorf("serialize page: %w", err)
	}
	if _, err := io.WriteString(w, page); err != nil {
		return res, fmt.Errorf("write page: %w", err)
	}
	return res, nil
}
