package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/example/lunchbook/internal/domain/booking"
)

// PingPage loads the booking page once and reports how many buttons it shows.
type PingPage struct {
	Browser booking.SessionOpener
	URL     string
	Timeout time.Duration
}

func (u PingPage) Execute(ctx context.Context) (int, error) {
	if u.Browser == nil {
		return 0, fmt.Errorf("browser is nil")
	}
	s, err := u.Browser.NewSession(ctx)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	if err := s.Open(ctx, u.URL, u.Timeout); err != nil {
		return 0, err
	}
	buttons, err := s.Buttons(ctx)
	if err != nil {
		return 0, err
	}
	return len(buttons), nil
}
