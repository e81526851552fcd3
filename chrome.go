package tableset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper and the fixed dataset page setup, in inches. The Chrome engine
// prints with the same geometry the LaTeX document declares: A4, portrait,
// one-inch margins.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 1.0
)

// ChromeEngine compiles HTML source (see [HTMLRenderer]) to PDF through a
// headless Chrome instance. The browser process is started once and
// reused across compilations, so a single engine should drive a whole
// sweep. It is safe for concurrent use.
//
// Call [ChromeEngine.Close] when the engine is no longer needed to
// release browser resources.
type ChromeEngine struct {
	cfg           engineConfig
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewChromeEngine creates a ChromeEngine with the given options and
// starts the browser in the background. The caller must call
// [ChromeEngine.Close] when finished.
//
// Chrome or Chromium must be available in PATH, or use [WithChromePath]
// or [WithAutoDownload].
func NewChromeEngine(opts ...EngineOption) (*ChromeEngine, error) {
	cfg := defaultEngineConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("tableset: starting browser: %w", err)
	}

	return &ChromeEngine{
		cfg:           cfg,
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases all resources held by the engine, including the browser
// process. Close is idempotent.
func (c *ChromeEngine) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.browserCancel()
	c.allocCancel()
	return nil
}

// Compile renders the HTML source and prints it to PDF with the fixed
// dataset page setup.
func (c *ChromeEngine) Compile(ctx context.Context, source string) (*Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "tableset-*.html")
	if err != nil {
		return nil, fmt.Errorf("tableset: creating temp file: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(source); err != nil {
		f.Close()
		return nil, fmt.Errorf("tableset: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("tableset: closing temp file: %w", err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("tableset: resolving path: %w", err)
	}

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(c.browserCtx)
	defer tabCancel()

	var buf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+abs),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginInches).
				WithMarginRight(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithScale(1.0).
				WithPrintBackground(false).
				WithLandscape(false).
				Do(ctx)
			return err
		}),
	); err != nil {
		return nil, fmt.Errorf("tableset: conversion failed: %w", err)
	}

	return NewResult(buf), nil
}

func (c *ChromeEngine) checkClosed() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}
