package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/example/lunchbook/internal/domain/booking"
	"github.com/example/lunchbook/internal/internaltypes"
)

// Timing bounds every blocking wait of one attempt.
type Timing struct {
	PageLoad    time.Duration
	Settle      time.Duration
	ConfirmWait time.Duration
}

var DefaultTiming = Timing{
	PageLoad:    20 * time.Second,
	Settle:      800 * time.Millisecond,
	ConfirmWait: 8 * time.Second,
}

// BookLunch runs a single booking attempt: set guests, search for a lunch
// slot, fill and submit the form, then classify the outcome. It never
// retries; callers wanting retries invoke it again.
type BookLunch struct {
	Browser booking.SessionOpener
	Profile booking.SiteProfile
	Contact booking.ContactInfo
	Horizon int
	Timing  Timing
	// Journal is optional.
	Journal booking.AttemptJournal
	Log     *slog.Logger

	now func() time.Time
}

// Execute returns a non-nil error only when the attempt could not start or
// the page failed to load; in that case the report's result is Exhausted.
func (u BookLunch) Execute(ctx context.Context) (booking.Report, error) {
	now := u.now
	if now == nil {
		now = time.Now
	}
	rep := booking.Report{
		ID:        uuid.NewString(),
		Result:    booking.ResultExhausted,
		StartedAt: now().UTC(),
	}
	log := logger(u.Log).With("attempt", rep.ID)

	err := u.run(ctx, log, &rep)
	rep.FinishedAt = now().UTC()
	if err != nil {
		rep.Result = booking.ResultExhausted
		rep.Error = err.Error()
		log.Error("attempt failed", "err", err)
	}
	log.Info("attempt finished",
		"result", rep.Result,
		"confirmed", rep.Confirmed,
		"advances", rep.Advances,
		"duration", rep.FinishedAt.Sub(rep.StartedAt).Round(time.Millisecond))

	if u.Journal != nil {
		// Journal failures never change the outcome.
		if jerr := u.Journal.Record(context.WithoutCancel(ctx), rep); jerr != nil {
			log.Warn("record attempt failed", "err", jerr)
		}
	}
	return rep, err
}

func (u BookLunch) run(ctx context.Context, log *slog.Logger, rep *booking.Report) error {
	if u.Browser == nil {
		return fmt.Errorf("browser is nil")
	}
	timing := u.Timing
	if timing == (Timing{}) {
		timing = DefaultTiming
	}

	s, err := u.Browser.NewSession(ctx)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			log.Warn("close session failed", "err", cerr)
		}
	}()

	if err := s.Open(ctx, u.Profile.URL, timing.PageLoad); err != nil {
		return fmt.Errorf("%w: %s: %w", internaltypes.ErrPageLoad, u.Profile.URL, err)
	}
	log.Info("page loaded", "url", u.Profile.URL)
	if err := pause(ctx, timing.Settle); err != nil {
		return err
	}

	rep.GuestsSet = SetGuestCount{Probe: s, Profile: u.Profile, Log: log}.Execute(ctx)

	visited := booking.NewVisitedLabels()
	search := SearchSlot{Probe: s, Profile: u.Profile, Horizon: u.Horizon, Settle: timing.Settle, Log: log}
	out, err := search.Execute(ctx, visited)
	rep.Advances = out.Advances
	rep.Visited = visited.Labels()
	if err != nil {
		return err
	}
	if out.State != Found {
		rep.Result = booking.ResultNoSlotFound
		return nil
	}

	if err := out.Slot.Element.Click(ctx); err != nil {
		log.Warn("slot click failed", "label", out.Slot.Text, "err", err)
	}
	if err := pause(ctx, timing.Settle); err != nil {
		return err
	}

	form := FillContactForm{Probe: s, Profile: u.Profile, Contact: u.Contact, Log: log}
	form.Fill(ctx)
	if !form.Submit(ctx) {
		rep.Result = booking.ResultSubmissionIncomplete
		return nil
	}

	rep.Result = booking.ResultSuccess
	if u.Profile.SuccessText == "" {
		log.Info("needs manual follow-up", "reason", "no success text configured")
		return nil
	}
	ok, err := s.WaitForText(ctx, u.Profile.SuccessText, timing.ConfirmWait)
	if err != nil {
		log.Debug("wait for confirmation failed", "err", err)
	}
	rep.Confirmed = ok
	if ok {
		log.Info("booking confirmed", "text", u.Profile.SuccessText)
	} else {
		log.Info("needs manual follow-up", "reason", "confirmation not seen, check SMS/LINE")
	}
	return nil
}
