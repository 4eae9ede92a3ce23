package engagement_port

import (
	"context"
	"time"

	"newscleanse/domain"
)

// OpenRecord is one read-session open joined with its article's raw
// category. Aggregators classify and bucket these in-process.
type OpenRecord struct {
	ArticleID    string
	RawCategory  string
	OpenedAt     time.Time
	DwellSeconds int
}

// OpensWindowPort returns a user's session opens inside [start, end).
type OpensWindowPort interface {
	FetchOpensWindow(ctx context.Context, userID int64, start, end time.Time) ([]OpenRecord, error)
}

// ReadHistoryPort returns a page of read history inside [start, end),
// newest first, plus the unpaged total.
type ReadHistoryPort interface {
	FetchReadHistory(ctx context.Context, userID int64, start, end time.Time, limit, offset int) ([]domain.ReadHistoryEntry, int, error)
}

// SessionsOverlapPort returns the user's app sessions overlapping
// [start, end). Unclosed sessions come back with a nil end.
type SessionsOverlapPort interface {
	FetchSessionsOverlap(ctx context.Context, userID int64, start, end time.Time) ([]domain.UserSession, error)
}
