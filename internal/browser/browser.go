// Package browser drives a headless Chromium page through the scroll interfaces.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/dennoAiden/swiper-venture/pkg/logger"
)

// Options controls how the browser is started.
type Options struct {
	// ControlURL connects to an already running browser instead of launching one.
	ControlURL string
	Headless   bool
	// Width and Height size the emulated window.
	Width  int
	Height int
}

// Browser owns a Chromium instance.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	opts     Options
	log      *slog.Logger
}

// Available reports whether a local Chromium binary can be found.
func Available() bool {
	_, ok := launcher.LookPath()
	return ok
}

// Launch starts (or connects to) a browser.
func Launch(ctx context.Context, opts Options, log *slog.Logger) (*Browser, error) {
	if opts.Width == 0 {
		opts.Width = 1280
	}
	if opts.Height == 0 {
		opts.Height = 800
	}

	b := &Browser{opts: opts, log: log.With(logger.Scope("browser"))}

	controlURL := opts.ControlURL
	if controlURL == "" {
		b.launcher = launcher.New().
			NoSandbox(true).
			Headless(opts.Headless).
			Set("disable-gpu").
			Set("disable-dev-shm-usage")

		u, err := b.launcher.Context(ctx).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		controlURL = u
	}

	b.browser = rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.browser.Connect(); err != nil {
		b.kill()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	b.log.Debug("browser connected", slog.String("control_url", controlURL))
	return b, nil
}

// Close shuts the browser down.
func (b *Browser) Close() error {
	err := b.browser.Close()
	b.kill()
	return err
}

func (b *Browser) kill() {
	if b.launcher != nil {
		b.launcher.Kill()
	}
}

// Open navigates a new tab to url and waits for the load event.
func (b *Browser) Open(url string, timeout time.Duration) (*Page, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             b.opts.Width,
		Height:            b.opts.Height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	timed := page.Timeout(timeout)
	if err := timed.Navigate(url); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("navigate: %w", err)
	}
	if err := timed.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("wait load: %w", err)
	}

	return &Page{page: page, log: b.log}, nil
}
