package domain

import "time"

// Engagement event types recorded in user_events. The column is free-form;
// these are the types this service writes or aggregates.
const (
	EventTypeArticleOpen  = "article_open"
	EventTypeArticleClose = "article_close"
	EventTypeMood         = "mood"
	// EventTypeStressDelta is the legacy mood event type still counted by
	// the mood snapshot.
	EventTypeStressDelta = "stress_delta"
)

// EngagementEvent is an append-only, immutable log record of a user action.
type EngagementEvent struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	EventType string         `json:"event_type"`
	ArticleID string         `json:"article_id,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
	Timestamp time.Time      `json:"ts"`
}

// MoodEvent is an engagement event carrying a signed stress delta.
// Delta is unbounded in magnitude and sign.
type MoodEvent struct {
	UserID    int64
	Delta     int
	Reason    string
	Attitude  string
	ArticleID string
	Timestamp time.Time
}

// Meta renders the mood payload the way it is stored in user_events.meta.
func (m *MoodEvent) EventMeta() map[string]any {
	meta := map[string]any{
		"delta":  m.Delta,
		"reason": m.Reason,
	}
	if m.Attitude != "" {
		meta["attitude"] = m.Attitude
	}
	return meta
}
