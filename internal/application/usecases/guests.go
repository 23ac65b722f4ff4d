package usecases

import (
	"context"
	"log/slog"

	"github.com/example/lunchbook/internal/domain/booking"
)

// SetGuestCount tries the first single-choice selector, then falls back to
// clicking a visible button from the guest vocabulary. Not setting the count
// is not an error; many pages already default to two guests.
type SetGuestCount struct {
	Probe   booking.PageProbe
	Profile booking.SiteProfile
	Log     *slog.Logger
}

func (u SetGuestCount) Execute(ctx context.Context) bool {
	log := logger(u.Log).With("step", "guests")

	if v := u.Profile.Guests.Value; v != "" {
		selects, err := u.Probe.Selects(ctx)
		if err != nil {
			log.Debug("list selects failed", "err", err)
		}
		if len(selects) > 0 {
			if err := selects[0].SelectOption(ctx, v); err == nil {
				log.Info("guest count set", "via", "select", "value", v)
				return true
			} else {
				log.Debug("select option failed", "err", err)
			}
		}
	}

	buttons, err := u.Probe.Buttons(ctx)
	if err != nil {
		log.Debug("list buttons failed", "err", err)
	}
	cands := booking.ReadCandidates(ctx, buttons)
	c, ok := u.Profile.GuestMatcher().MatchFunc(cands, func(c booking.Candidate) bool {
		return isVisible(ctx, c.Element)
	})
	if ok {
		if err := c.Element.Click(ctx); err == nil {
			log.Info("guest count set", "via", "button", "label", c.Text)
			return true
		} else {
			log.Debug("guest button click failed", "label", c.Text, "err", err)
		}
	}

	log.Info("guest count not set, confirm manually")
	return false
}

func isVisible(ctx context.Context, el booking.Element) bool {
	ok, err := el.Visible(ctx)
	return err == nil && ok
}

func isEnabled(ctx context.Context, el booking.Element) bool {
	ok, err := el.Enabled(ctx)
	return err == nil && ok
}

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
