package event_port

import (
	"context"
	"time"

	"newscleanse/domain"
)

// AppendEventsPort appends a batch of engagement events. Partial
// validation happens before this port; every event handed in is inserted.
type AppendEventsPort interface {
	AppendEvents(ctx context.Context, events []domain.EngagementEvent) (int, error)
}

// RecordMoodPort appends one mood event and returns its id.
type RecordMoodPort interface {
	RecordMood(ctx context.Context, ev *domain.MoodEvent) (int64, error)
}

// MoodDeltaRow is one mood delta with its event instant. Deltas arrive as
// floats because the meta column is free-form JSON.
type MoodDeltaRow struct {
	Delta     float64
	Timestamp time.Time
}

// MoodDeltasPort returns the user's mood deltas since the given instant.
// Events with non-numeric delta payloads are skipped, not errors.
type MoodDeltasPort interface {
	FetchMoodDeltas(ctx context.Context, userID int64, since time.Time) ([]MoodDeltaRow, error)
}
