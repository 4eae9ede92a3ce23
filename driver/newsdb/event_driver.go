package newsdb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"newscleanse/domain"
	"newscleanse/utils/logger"
)

// AppendEvents inserts a batch of engagement events in one transaction
// and returns the inserted count.
func (r *Repository) AppendEvents(ctx context.Context, events []domain.EngagementEvent) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin append events: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, ev := range events {
		ts := ev.Timestamp
		if ts.IsZero() {
			ts = time.Now().UTC()
		}
		var id int64
		err := tx.QueryRow(ctx, insertEventQuery,
			ev.UserID, ev.EventType, nullIfEmpty(ev.ArticleID), ev.Meta, ts,
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("insert event: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit append events: %w", err)
	}

	logger.SafeInfoContext(ctx, "events appended", "count", inserted)
	return inserted, nil
}

// RecordMood appends one mood event and returns its id.
func (r *Repository) RecordMood(ctx context.Context, ev *domain.MoodEvent) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	var id int64
	err := r.pool.QueryRow(ctx, insertEventQuery,
		ev.UserID, domain.EventTypeMood, nullIfEmpty(ev.ArticleID), ev.EventMeta(), ts,
	).Scan(&id)
	if err != nil {
		err = fmt.Errorf("record mood: %w", err)
		logger.SafeErrorContext(ctx, "failed to record mood event", "user_id", ev.UserID, "error", err)
		return 0, err
	}

	return id, nil
}

// MoodDeltaRow is one stored mood delta with its event instant.
type MoodDeltaRow struct {
	Delta     float64
	Timestamp time.Time
}

const moodDeltasQuery = `
	SELECT meta->>'delta', ts
	FROM user_events
	WHERE user_id = $1 AND event_type = ANY($2) AND ts >= $3
	ORDER BY ts
`

// FetchMoodDeltas returns the user's mood deltas since the given instant.
// Rows whose delta payload is missing or non-numeric are skipped.
func (r *Repository) FetchMoodDeltas(ctx context.Context, userID int64, since time.Time) ([]MoodDeltaRow, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	eventTypes := []string{domain.EventTypeMood, domain.EventTypeStressDelta}
	rows, err := r.pool.Query(ctx, moodDeltasQuery, userID, eventTypes, since)
	if err != nil {
		err = fmt.Errorf("fetch mood deltas: %w", err)
		logger.SafeErrorContext(ctx, "failed to fetch mood deltas", "user_id", userID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var deltas []MoodDeltaRow
	for rows.Next() {
		var (
			raw *string
			ts  time.Time
		)
		if err := rows.Scan(&raw, &ts); err != nil {
			return nil, fmt.Errorf("scan mood delta: %w", err)
		}
		if raw == nil {
			continue
		}
		delta, err := strconv.ParseFloat(*raw, 64)
		if err != nil {
			continue
		}
		deltas = append(deltas, MoodDeltaRow{Delta: delta, Timestamp: ts})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch mood deltas: %w", err)
	}

	return deltas, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
