package event_gateway

import (
	"context"
	"time"

	"newscleanse/domain"
	"newscleanse/driver/newsdb"
	"newscleanse/port/event_port"
	appErrors "newscleanse/utils/errors"
)

// EventGateway adapts the event store to the event and mood ports.
type EventGateway struct {
	repo *newsdb.Repository
}

func NewEventGateway(repo *newsdb.Repository) *EventGateway {
	return &EventGateway{repo: repo}
}

func (g *EventGateway) AppendEvents(ctx context.Context, events []domain.EngagementEvent) (int, error) {
	inserted, err := g.repo.AppendEvents(ctx, events)
	if err != nil {
		return 0, appErrors.DatabaseError("failed to append events", err, map[string]interface{}{
			"count": len(events),
		})
	}
	return inserted, nil
}

func (g *EventGateway) RecordMood(ctx context.Context, ev *domain.MoodEvent) (int64, error) {
	id, err := g.repo.RecordMood(ctx, ev)
	if err != nil {
		return 0, appErrors.DatabaseError("failed to record mood event", err, map[string]interface{}{
			"user_id": ev.UserID,
		})
	}
	return id, nil
}

func (g *EventGateway) FetchMoodDeltas(ctx context.Context, userID int64, since time.Time) ([]event_port.MoodDeltaRow, error) {
	rows, err := g.repo.FetchMoodDeltas(ctx, userID, since)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to fetch mood deltas", err, map[string]interface{}{
			"user_id": userID,
		})
	}

	deltas := make([]event_port.MoodDeltaRow, 0, len(rows))
	for _, row := range rows {
		deltas = append(deltas, event_port.MoodDeltaRow{Delta: row.Delta, Timestamp: row.Timestamp})
	}
	return deltas, nil
}
