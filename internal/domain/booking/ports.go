package booking

import (
	"context"
	"time"
)

// Element is a handle to one node on the live page. Handles are only valid
// until the page re-renders; any method may then fail with
// internaltypes.ErrElementDetached or internaltypes.ErrProbeTimeout.
type Element interface {
	Text(ctx context.Context) (string, error)
	Attribute(ctx context.Context, name string) (string, error)
	Visible(ctx context.Context) (bool, error)
	Enabled(ctx context.Context) (bool, error)
	Click(ctx context.Context) error
	Fill(ctx context.Context, value string) error
	SelectOption(ctx context.Context, value string) error
}

// PageProbe enumerates interactive elements on the current view.
type PageProbe interface {
	Buttons(ctx context.Context) ([]Element, error)
	Inputs(ctx context.Context) ([]Element, error)
	Selects(ctx context.Context) ([]Element, error)
	// WaitForText reports whether text became visible before timeout.
	// Timing out is not an error.
	WaitForText(ctx context.Context, text string, timeout time.Duration) (bool, error)
}

// Session is one browser page owned by a single attempt.
type Session interface {
	PageProbe
	Open(ctx context.Context, url string, timeout time.Duration) error
	Close() error
}

type SessionOpener interface {
	NewSession(ctx context.Context) (Session, error)
}

// AttemptJournal records finished attempts.
type AttemptJournal interface {
	Record(ctx context.Context, r Report) error
	List(ctx context.Context, limit int) ([]Report, error)
}
