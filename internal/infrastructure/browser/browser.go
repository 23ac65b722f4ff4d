package browser

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/example/lunchbook/internal/domain/booking"
)

type Options struct {
	Headless bool
	// ActionTimeout bounds every probe and action on the page.
	ActionTimeout time.Duration
	// Install downloads the driver and Chromium before starting.
	Install bool
}

// Browser owns the Playwright driver. Each NewSession launches a fresh
// Chromium with one page.
type Browser struct {
	pw   *playwright.Playwright
	opts Options
}

func Start(opts Options) (*Browser, error) {
	if opts.ActionTimeout <= 0 {
		opts.ActionTimeout = 5 * time.Second
	}
	run := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}
	if opts.Install {
		if err := playwright.Install(run); err != nil {
			return nil, fmt.Errorf("install playwright: %w", err)
		}
	}
	pw, err := playwright.Run(run)
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	return &Browser{pw: pw, opts: opts}, nil
}

func (b *Browser) Stop() error {
	if err := b.pw.Stop(); err != nil {
		return fmt.Errorf("stop playwright: %w", err)
	}
	return nil
}

func (b *Browser) NewSession(ctx context.Context) (booking.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	browser, err := b.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.opts.Headless),
	})
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	bctx, err := browser.NewContext()
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("create context: %w", err)
	}
	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		_ = browser.Close()
		return nil, fmt.Errorf("create page: %w", err)
	}
	page.SetDefaultTimeout(ms(b.opts.ActionTimeout))

	return &Session{browser: browser, bctx: bctx, page: page, timeout: b.opts.ActionTimeout}, nil
}

func ms(d time.Duration) float64 { return float64(d.Milliseconds()) }
