package read_session_usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"newscleanse/domain"
	"newscleanse/port/event_port"
	"newscleanse/port/read_session_port"
	"newscleanse/utils/logger"
)

// ReadSessionUsecase drives read open/close and the batch event ingest.
type ReadSessionUsecase struct {
	opener   read_session_port.OpenReadPort
	closer   read_session_port.CloseReadPort
	appender event_port.AppendEventsPort
}

func NewReadSessionUsecase(opener read_session_port.OpenReadPort, closer read_session_port.CloseReadPort, appender event_port.AppendEventsPort) *ReadSessionUsecase {
	return &ReadSessionUsecase{opener: opener, closer: closer, appender: appender}
}

func (u *ReadSessionUsecase) Open(ctx context.Context, userID int64, articleID string) (int64, error) {
	return u.opener.OpenRead(ctx, userID, articleID)
}

func (u *ReadSessionUsecase) Close(ctx context.Context, userID int64, articleID string, readID int64) (*read_session_port.CloseResult, error) {
	return u.closer.CloseRead(ctx, userID, articleID, readID)
}

// RawEvent is one unvalidated client event. UserID arrives untyped because
// clients have historically sent both numbers and strings.
type RawEvent struct {
	UserID    any
	EventType string
	ArticleID string
	Meta      map[string]any
	Timestamp *time.Time
}

// RejectedEvent reports one record dropped during ingest.
type RejectedEvent struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// IngestResult reports how a batch fared.
type IngestResult struct {
	Inserted int             `json:"inserted"`
	Rejected []RejectedEvent `json:"rejected"`
}

// Ingest appends a batch of client events. A record with an unparseable
// user id is reported back by index without failing the batch.
func (u *ReadSessionUsecase) Ingest(ctx context.Context, raw []RawEvent) (*IngestResult, error) {
	now := time.Now().UTC()

	result := &IngestResult{Rejected: []RejectedEvent{}}
	events := make([]domain.EngagementEvent, 0, len(raw))
	for i, r := range raw {
		uid, err := parseUserID(r.UserID)
		if err != nil {
			result.Rejected = append(result.Rejected, RejectedEvent{Index: i, Reason: err.Error()})
			continue
		}
		ts := now
		if r.Timestamp != nil {
			ts = r.Timestamp.UTC()
		}
		meta := r.Meta
		if meta == nil {
			meta = map[string]any{}
		}
		events = append(events, domain.EngagementEvent{
			UserID:    uid,
			EventType: r.EventType,
			ArticleID: r.ArticleID,
			Meta:      meta,
			Timestamp: ts,
		})
	}

	if len(events) > 0 {
		inserted, err := u.appender.AppendEvents(ctx, events)
		if err != nil {
			return nil, err
		}
		result.Inserted = inserted
	}

	if len(result.Rejected) > 0 {
		logger.SafeWarnContext(ctx, "event batch partially rejected",
			"inserted", result.Inserted, "rejected", len(result.Rejected))
	}
	return result, nil
}

func parseUserID(v any) (int64, error) {
	switch id := v.(type) {
	case nil:
		return 0, fmt.Errorf("user_id missing")
	case float64:
		return int64(id), nil
	case int64:
		return id, nil
	case int:
		return int64(id), nil
	case string:
		parsed, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("user_id not an integer: %q", id)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("user_id has unsupported type %T", v)
	}
}
