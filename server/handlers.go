package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"github.com/4thWaveAI/feeds/pkg/domain"
	"github.com/4thWaveAI/feeds/pkg/widget"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// errLoadFailed is reported for any feed load failure, upstream details stay in the log
var errLoadFailed = errors.New("failed to load feeds")

// itemsResponse is the body of /api/v1/items
type itemsResponse struct {
	Items []apiItem `json:"items"`
	Count int       `json:"count"`
}

// apiItem is an item as sent by the API, absent date and media are null
type apiItem struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	PublishedAt *string `json:"published_at"`
	Area        string  `json:"area"`
	Image       *string `json:"image"`
	Video       *string `json:"video"`
}

func toAPIItems(items []domain.Item) []apiItem {
	return lo.Map(items, func(it domain.Item, _ int) apiItem {
		return apiItem{
			Title:       it.Title,
			URL:         it.URL,
			Description: it.Description,
			PublishedAt: lo.EmptyableToPtr(it.PublishedAt),
			Area:        it.Area,
			Image:       lo.EmptyableToPtr(it.Image),
			Video:       lo.EmptyableToPtr(it.Video),
		}
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// itemsHandler returns merged items of the feeds given by feed and merge params
// GET /api/v1/items?feed=...&merge=a,b&area=...&limit=9
func (s *Server) itemsHandler(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.apiSpec(w, r)
	if !ok {
		return
	}

	items, err := s.widgets.Items(r.Context(), spec)
	if err != nil {
		if errors.Is(err, widget.ErrNoFeeds) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[WARN] failed to load items for %s: %v", spec.FeedURL, err)
		renderError(w, r, errLoadFailed, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, itemsResponse{Items: toAPIItems(items), Count: len(items)})
}

// galleryHandler returns a rendered gallery fragment
// GET /api/v1/gallery?feed=...&merge=a,b&area=...&limit=9&title=...&view_all=...
func (s *Server) galleryHandler(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.apiSpec(w, r)
	if !ok {
		return
	}

	markup, err := s.widgets.Gallery(r.Context(), spec)
	if err != nil {
		if errors.Is(err, widget.ErrNoFeeds) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[WARN] failed to render gallery for %s: %v", spec.FeedURL, err)
		renderError(w, r, errLoadFailed, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(markup)); err != nil {
		log.Printf("[ERROR] failed to write gallery response: %v", err)
	}
}

// pageHandler serves the host page with all widgets rendered
func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	if s.page == "" {
		http.Error(w, "no host page configured", http.StatusNotFound)
		return
	}

	fh, err := os.Open(s.page)
	if err != nil {
		log.Printf("[ERROR] failed to open host page %s: %v", s.page, err)
		http.Error(w, "host page is not available", http.StatusInternalServerError)
		return
	}
	defer fh.Close()

	var buf strings.Builder
	res, err := s.widgets.RenderPage(r.Context(), fh, &buf)
	if err != nil {
		log.Printf("[ERROR] failed to render host page: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	if res.Failed > 0 {
		log.Printf("[WARN] host page rendered with %d of %d widgets failed", res.Failed, res.Containers)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(buf.String())); err != nil {
		log.Printf("[ERROR] failed to write page response: %v", err)
	}
}

// apiSpec parses the widget declaration of an API request and checks its feeds are allowed.
// It writes the error response itself and reports false on rejection.
func (s *Server) apiSpec(w http.ResponseWriter, r *http.Request) (domain.WidgetSpec, bool) {
	spec, err := specFromQuery(r.URL.Query())
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return spec, false
	}
	for _, u := range spec.FeedURLs() {
		if _, ok := s.apiFeeds[u]; !ok {
			log.Printf("[WARN] rejected api request for feed %q", u)
			renderError(w, r, fmt.Errorf("feed %q is not allowed", u), http.StatusForbidden)
			return spec, false
		}
	}
	return spec, true
}

// specFromQuery builds a widget declaration from request parameters
func specFromQuery(q url.Values) (domain.WidgetSpec, error) {
	spec := domain.WidgetSpec{
		FeedURL:    strings.TrimSpace(q.Get("feed")),
		Merge:      widget.ParseMergeList(q.Get("merge")),
		Title:      strings.TrimSpace(q.Get("title")),
		Area:       strings.TrimSpace(q.Get("area")),
		ViewAllURL: strings.TrimSpace(q.Get("view_all")),
	}
	if spec.FeedURL == "" {
		return spec, errors.New("feed parameter is required")
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return spec, fmt.Errorf("invalid limit %q", v)
		}
		spec.Limit = n
	}
	return spec, nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
