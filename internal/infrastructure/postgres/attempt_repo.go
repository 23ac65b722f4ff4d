package postgres

import (
	"context"
	"fmt"

	"github.com/example/lunchbook/internal/domain/booking"
)

// AttemptRepo is the booking_attempts journal.
type AttemptRepo struct{ db *DB }

func NewAttemptRepo(d *DB) *AttemptRepo { return &AttemptRepo{db: d} }

func (r *AttemptRepo) Record(ctx context.Context, rep booking.Report) error {
	visited := rep.Visited
	if visited == nil {
		visited = []string{}
	}
	err := r.db.Exec(ctx, `
INSERT INTO booking_attempts(id,result,confirmed,guests_set,advances,visited,error,started_at,finished_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rep.ID, string(rep.Result), rep.Confirmed, rep.GuestsSet, rep.Advances, visited, rep.Error, rep.StartedAt, rep.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("record attempt %s: %w", rep.ID, err)
	}
	return nil
}

func (r *AttemptRepo) Get(ctx context.Context, id string) (booking.Report, error) {
	rep, err := scanReport(r.db.QueryRow(ctx, `
SELECT id,result,confirmed,guests_set,advances,visited,error,started_at,finished_at
FROM booking_attempts
WHERE id=$1`, id))
	if err != nil {
		return booking.Report{}, WrapNotFound(err)
	}
	return rep, nil
}

// List returns the most recent attempts first.
func (r *AttemptRepo) List(ctx context.Context, limit int) ([]booking.Report, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(ctx, `
SELECT id,result,confirmed,guests_set,advances,visited,error,started_at,finished_at
FROM booking_attempts
ORDER BY started_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []booking.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (booking.Report, error) {
	var rep booking.Report
	var result string
	if err := row.Scan(&rep.ID, &result, &rep.Confirmed, &rep.GuestsSet, &rep.Advances, &rep.Visited, &rep.Error, &rep.StartedAt, &rep.FinishedAt); err != nil {
		return booking.Report{}, err
	}
	r, err := booking.ParseAttemptResult(result)
	if err != nil {
		return booking.Report{}, err
	}
	rep.Result = r
	return rep, nil
}
