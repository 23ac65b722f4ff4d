package usecases

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/example/lunchbook/internal/domain/booking"
)

const DefaultHorizon = 30

type SearchState int

const (
	Searching SearchState = iota
	Found
	Exhausted
)

func (s SearchState) String() string {
	switch s {
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

type SearchOutcome struct {
	State SearchState
	// Slot is set only when State is Found.
	Slot       booking.Candidate
	Advances   int
	Iterations int
}

// SearchSlot walks calendar views looking for a lunch slot. Each iteration
// probes the current view and, when nothing matches, performs at most one
// advancing click: an unvisited date label first, a pagination control
// second. The walk stops after Horizon advances even if the page keeps
// offering controls, so it runs at most Horizon+1 iterations.
type SearchSlot struct {
	Probe   booking.PageProbe
	Profile booking.SiteProfile
	Horizon int
	Settle  time.Duration
	Log     *slog.Logger
}

func (u SearchSlot) Execute(ctx context.Context, visited *booking.VisitedLabels) (SearchOutcome, error) {
	log := logger(u.Log).With("step", "search")
	horizon := u.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	if visited == nil {
		visited = booking.NewVisitedLabels()
	}

	out := SearchOutcome{State: Searching}
	for out.State == Searching {
		if err := pause(ctx, u.Settle); err != nil {
			return out, err
		}
		out.Iterations++

		els, buttons := u.buttons(ctx, log)
		if c, ok := u.Profile.SlotMatcher().Match(buttons); ok {
			log.Info("lunch slot found", "label", c.Text, "advances", out.Advances)
			out.State = Found
			out.Slot = c
			break
		}

		if out.Advances >= horizon {
			log.Info("search exhausted", "reason", "horizon", "advances", out.Advances)
			out.State = Exhausted
			break
		}
		if !u.advance(ctx, log, els, buttons, visited) {
			log.Info("search exhausted", "reason", "no more dates", "advances", out.Advances)
			out.State = Exhausted
			break
		}
		out.Advances++
	}
	return out, nil
}

func (u SearchSlot) buttons(ctx context.Context, log *slog.Logger) ([]booking.Element, []booking.Candidate) {
	els, err := u.Probe.Buttons(ctx)
	if err != nil {
		log.Debug("list buttons failed", "err", err)
		return nil, nil
	}
	return els, booking.ReadCandidates(ctx, els)
}

func (u SearchSlot) advance(ctx context.Context, log *slog.Logger, els []booking.Element, buttons []booking.Candidate, visited *booking.VisitedLabels) bool {
	dates := u.Profile.Dates
	for _, c := range buttons {
		if visited.Has(c.Text) || booking.LabelLen(c.Text) >= dates.MaxLabelLen {
			continue
		}
		if !booking.ContainsAny(c.Text, dates.Markers) {
			continue
		}
		// Recorded before the click so a failing label is never retried.
		visited.Add(c.Text)
		if err := c.Element.Click(ctx); err != nil {
			log.Debug("date click failed", "label", c.Text, "err", err)
			continue
		}
		log.Info("date advanced", "label", c.Text)
		return true
	}

	// Pagination arrows are often icon-only, so they are looked up on the
	// raw elements rather than on text candidates.
	for _, el := range els {
		if el == nil || !u.isPager(ctx, el) {
			continue
		}
		if !isEnabled(ctx, el) {
			return false
		}
		if err := el.Click(ctx); err != nil {
			log.Debug("pager click failed", "err", err)
			return false
		}
		log.Info("page advanced")
		return true
	}
	return false
}

func (u SearchSlot) isPager(ctx context.Context, el booking.Element) bool {
	pager := u.Profile.Pager
	if len(pager.AriaLabels) > 0 {
		if aria, err := el.Attribute(ctx, "aria-label"); err == nil {
			for _, want := range pager.AriaLabels {
				if want != "" && strings.EqualFold(strings.TrimSpace(aria), want) {
					return true
				}
			}
		}
	}
	if len(pager.Texts) == 0 {
		return false
	}
	txt, err := el.Text(ctx)
	return err == nil && booking.ContainsAny(txt, pager.Texts)
}

// pause waits d, returning early only on cancellation.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
