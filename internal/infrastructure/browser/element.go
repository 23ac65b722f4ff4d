package browser

import (
	"context"
	"errors"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/example/lunchbook/internal/internaltypes"
)

// Element wraps an element handle captured during one enumeration.
type Element struct {
	h       playwright.ElementHandle
	timeout time.Duration
}

func (e *Element) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s, err := e.h.InnerText()
	return s, classify(err)
}

func (e *Element) Attribute(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s, err := e.h.GetAttribute(name)
	return s, classify(err)
}

func (e *Element) Visible(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := e.h.IsVisible()
	return ok, classify(err)
}

func (e *Element) Enabled(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := e.h.IsEnabled()
	return ok, classify(err)
}

// Click falls back to a synthetic DOM click when the pointer click is
// rejected, e.g. by an overlay intercepting it.
func (e *Element) Click(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := classify(e.h.Click(playwright.ElementHandleClickOptions{Timeout: playwright.Float(ms(e.timeout))}))
	if err == nil || errors.Is(err, internaltypes.ErrElementDetached) {
		return err
	}
	if derr := e.h.DispatchEvent("click"); derr != nil {
		return classify(derr)
	}
	return nil
}

func (e *Element) Fill(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return classify(e.h.Fill(value, playwright.ElementHandleFillOptions{Timeout: playwright.Float(ms(e.timeout))}))
}

func (e *Element) SelectOption(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := e.h.SelectOption(playwright.SelectOptionValues{Values: &[]string{value}},
		playwright.ElementHandleSelectOptionOptions{Timeout: playwright.Float(ms(e.timeout))})
	return classify(err)
}
