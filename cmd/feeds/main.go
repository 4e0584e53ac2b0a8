package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/4thWaveAI/feeds/pkg/cache"
	"github.com/4thWaveAI/feeds/pkg/config"
	"github.com/4thWaveAI/feeds/pkg/feed"
	"github.com/4thWaveAI/feeds/pkg/render"
	"github.com/4thWaveAI/feeds/pkg/widget"
	"github.com/4thWaveAI/feeds/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Page   string `short:"p" long:"page" env:"PAGE" description:"host page with gallery containers, overrides config"`
	Render bool   `long:"render" description:"render the host page once and exit"`
	Out    string `short:"o" long:"out" default:"-" description:"output file for render mode, - for stdout"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting feeds version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and either serves them or renders the host page once
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Page != "" {
		cfg.Server.Page = opts.Page
	}

	feedCache, closeCache, err := makeCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to make cache: %w", err)
	}
	defer closeCache()

	fetcher := feed.NewHTTPFetcher(feed.FetcherParams{
		Cache:     feedCache,
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
		MaxBody:   cfg.Fetch.MaxBody,
	})

	renderer, err := render.NewHTML()
	if err != nil {
		return fmt.Errorf("failed to make renderer: %w", err)
	}

	widgets := widget.New(widget.Params{
		Loader:   feed.NewAggregator(feed.NewLoader(fetcher)),
		Renderer: renderer,
		Defaults: widget.Defaults{
			Limit: cfg.Widget.Limit,
			Title: cfg.Widget.Title,
			Area:  cfg.Widget.Area,
		},
		Skeletons:        cfg.Widget.Skeletons,
		DescriptionLimit: cfg.Widget.DescriptionLen,
	})

	if opts.Render {
		return renderOnce(ctx, widgets, cfg.Server.Page, opts.Out)
	}

	srv := server.New(cfg, widgets, cfg.Server.Page, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeCache creates the configured cache backend and its close function
func makeCache(ctx context.Context, cfg config.CacheConfig) (feed.Cache, func(), error) {
	switch cfg.Type {
	case config.CacheSQLite:
		c, err := cache.NewSQLite(ctx, cfg.DSN, cfg.TTL)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite cache: %w", err)
		}
		log.Printf("[INFO] using sqlite cache, ttl %v", cfg.TTL)
		return c, func() {
			if err := c.Close(); err != nil {
				log.Printf("[WARN] failed to close cache: %v", err)
			}
		}, nil
	case config.CacheMemory, "":
		log.Printf("[INFO] using memory cache, ttl %v", cfg.TTL)
		return cache.NewMemory(cfg.TTL), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

// renderOnce renders all widgets of the host page and writes the result to out
func renderOnce(ctx context.Context, widgets *widget.Bootstrapper, page, out string) error {
	if page == "" {
		return errors.New("page is required in render mode")
	}

	in, err := os.Open(page) //nolint:gosec // page path comes from CLI flag or config
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}
	defer in.Close()

	var w io.Writer = os.Stdout
	if out != "" && out != "-" {
		fh, err := os.Create(out) //nolint:gosec // output path comes from CLI flag
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer fh.Close()
		w = fh
	}

	res, err := widgets.RenderPage(ctx, in, w)
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	log.Printf("[INFO] rendered %d of %d widgets, %d failed", res.Rendered, res.Containers, res.Failed)
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
