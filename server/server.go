package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/4thWaveAI/feeds/pkg/domain"
	"github.com/4thWaveAI/feeds/pkg/widget"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/widgets.go -pkg mocks -skip-ensure -fmt goimports . Widgets

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	widgets Widgets
	page    string
	version string
	debug   bool

	apiFeeds map[string]struct{} // feed URLs the API may load

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Widgets loads and renders galleries
type Widgets interface {
	Items(ctx context.Context, spec domain.WidgetSpec) ([]domain.Item, error)
	Gallery(ctx context.Context, spec domain.WidgetSpec) (string, error)
	RenderPage(ctx context.Context, r io.Reader, w io.Writer) (widget.Result, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAPIFeeds() []string
}

// New initializes a new server instance. page is the host page path served on /, may be empty.
// The API loads only feeds declared by the page at startup or listed in the config.
func New(cfg ConfigProvider, widgets Widgets, page, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		widgets: widgets,
		page:    page,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}
	s.apiFeeds = s.loadAPIFeeds()

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// loadAPIFeeds collects allowed feed URLs from the config and the host page
func (s *Server) loadAPIFeeds() map[string]struct{} {
	feeds := append([]string{}, s.config.GetAPIFeeds()...)
	if s.page != "" {
		pageFeeds, err := pageFeedURLs(s.page)
		if err != nil {
			log.Printf("[WARN] can't read feeds of host page %s: %v", s.page, err)
		}
		feeds = append(feeds, pageFeeds...)
	}

	res := make(map[string]struct{}, len(feeds))
	for _, u := range feeds {
		if u = strings.TrimSpace(u); u != "" {
			res[u] = struct{}{}
		}
	}
	log.Printf("[DEBUG] api allows %d feeds", len(res))
	return res
}

func pageFeedURLs(page string) ([]string, error) {
	fh, err := os.Open(page) //nolint:gosec // page path comes from CLI flag or config
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer fh.Close()
	return widget.PageFeedURLs(fh)
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feeds", "4thWaveAI", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // only GET requests are served
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /items", s.itemsHandler)
		r.HandleFunc("GET /gallery", s.galleryHandler)
	})

	s.router.Handle("GET /metrics", promhttp.Handler())
	s.router.HandleFunc("GET /{$}", s.pageHandler)
}
