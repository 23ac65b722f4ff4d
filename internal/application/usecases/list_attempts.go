package usecases

import (
	"context"
	"errors"

	"github.com/example/lunchbook/internal/domain/booking"
)

const DefaultHistoryLimit = 20

// ListAttempts returns the most recent recorded attempts, newest first.
type ListAttempts struct {
	Journal booking.AttemptJournal
	Limit   int
}

func (u ListAttempts) Execute(ctx context.Context) ([]booking.Report, error) {
	if u.Journal == nil {
		return nil, errors.New("attempt journal not configured")
	}
	limit := u.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return u.Journal.List(ctx, limit)
}
