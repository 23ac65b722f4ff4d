package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/example/lunchbook/internal/domain/booking"
	"github.com/example/lunchbook/internal/internaltypes"
)

// Session is one Chromium page.
type Session struct {
	browser playwright.Browser
	bctx    playwright.BrowserContext
	page    playwright.Page
	timeout time.Duration

	closeOnce sync.Once
	closeErr  error
}

func (s *Session) Open(ctx context.Context, url string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := playwright.PageGotoOptions{WaitUntil: playwright.WaitUntilStateLoad}
	if timeout > 0 {
		opts.Timeout = playwright.Float(ms(timeout))
	}
	if _, err := s.page.Goto(url, opts); err != nil {
		return classify(err)
	}
	return nil
}

// Close releases page, context and browser. Safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		var errs []error
		if err := s.page.Close(); err != nil {
			errs = append(errs, err)
		}
		if err := s.bctx.Close(); err != nil {
			errs = append(errs, err)
		}
		if err := s.browser.Close(); err != nil {
			errs = append(errs, err)
		}
		if len(errs) > 0 {
			s.closeErr = fmt.Errorf("close session: %w", errors.Join(errs...))
		}
	})
	return s.closeErr
}

func (s *Session) Buttons(ctx context.Context) ([]booking.Element, error) {
	return s.query(ctx, "button, [role=button]")
}

func (s *Session) Inputs(ctx context.Context) ([]booking.Element, error) {
	return s.query(ctx, "input")
}

func (s *Session) Selects(ctx context.Context) ([]booking.Element, error) {
	return s.query(ctx, "select")
}

func (s *Session) query(ctx context.Context, selector string) ([]booking.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	handles, err := s.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]booking.Element, 0, len(handles))
	for _, h := range handles {
		out = append(out, &Element{h: h, timeout: s.timeout})
	}
	return out, nil
}

func (s *Session) WaitForText(ctx context.Context, text string, timeout time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	err := s.page.GetByText(text).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(ms(timeout)),
	})
	if err == nil {
		return true, nil
	}
	if err = classify(err); errors.Is(err, internaltypes.ErrProbeTimeout) {
		return false, nil
	}
	return false, err
}

// classify maps driver errors onto the probe error taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %w", internaltypes.ErrProbeTimeout, err)
	}
	if errors.Is(err, playwright.ErrTargetClosed) || isDetached(err) {
		return fmt.Errorf("%w: %w", internaltypes.ErrElementDetached, err)
	}
	return err
}

func isDetached(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not attached") ||
		strings.Contains(msg, "detached") ||
		strings.Contains(msg, "execution context was destroyed")
}
