package usecases

import (
	"context"
	"log/slog"
	"strings"

	"github.com/example/lunchbook/internal/domain/booking"
)

// FillContactForm writes contact details into the inputs it can classify and
// presses the highest-priority submit button that is visible and enabled.
type FillContactForm struct {
	Probe   booking.PageProbe
	Profile booking.SiteProfile
	Contact booking.ContactInfo
	Log     *slog.Logger
}

// Fill returns the number of inputs written.
func (u FillContactForm) Fill(ctx context.Context) int {
	log := logger(u.Log).With("step", "form")

	inputs, err := u.Probe.Inputs(ctx)
	if err != nil {
		log.Debug("list inputs failed", "err", err)
		return 0
	}

	filled := 0
	for _, in := range inputs {
		if in == nil {
			continue
		}
		field, ok := u.classify(ctx, in)
		if !ok {
			continue
		}
		v := u.Contact.Value(field)
		if v == "" {
			continue
		}
		if err := in.Fill(ctx, v); err != nil {
			log.Debug("fill failed", "field", field, "err", err)
			continue
		}
		log.Debug("field filled", "field", field)
		filled++
	}
	log.Info("contact form filled", "fields", filled)
	return filled
}

// classify picks the first rule, in profile order, whose placeholder or name
// vocabulary matches the input.
func (u FillContactForm) classify(ctx context.Context, in booking.Element) (booking.ContactField, bool) {
	placeholder := attr(ctx, in, "placeholder")
	name := attr(ctx, in, "name")
	if placeholder == "" && name == "" {
		return "", false
	}
	for _, rule := range u.Profile.Fields {
		if booking.ContainsAny(placeholder, rule.Placeholder) || booking.ContainsAny(name, rule.Name) {
			return rule.Field, true
		}
	}
	return "", false
}

// Submit reports whether a submit button was clicked.
func (u FillContactForm) Submit(ctx context.Context) bool {
	log := logger(u.Log).With("step", "submit")

	buttons, err := u.Probe.Buttons(ctx)
	if err != nil {
		log.Debug("list buttons failed", "err", err)
	}
	cands := booking.ReadCandidates(ctx, buttons)
	m := u.Profile.SubmitMatcher()
	for len(cands) > 0 {
		c, ok := m.MatchFunc(cands, func(c booking.Candidate) bool {
			return isVisible(ctx, c.Element) && isEnabled(ctx, c.Element)
		})
		if !ok {
			break
		}
		if err := c.Element.Click(ctx); err == nil {
			log.Info("submission attempted", "label", c.Text)
			return true
		} else {
			log.Debug("submit click failed", "label", c.Text, "err", err)
		}
		cands = without(cands, c)
	}

	log.Info("submission not completed, manual step may be required")
	return false
}

func attr(ctx context.Context, el booking.Element, name string) string {
	v, err := el.Attribute(ctx, name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

func without(cands []booking.Candidate, drop booking.Candidate) []booking.Candidate {
	out := cands[:0:0]
	for _, c := range cands {
		if c.Element != drop.Element {
			out = append(out, c)
		}
	}
	return out
}
