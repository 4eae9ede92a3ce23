package engagement_gateway

import (
	"context"
	"time"

	"newscleanse/domain"
	"newscleanse/driver/newsdb"
	"newscleanse/port/engagement_port"
	appErrors "newscleanse/utils/errors"
)

// EngagementGateway adapts the read and session stores to the analytics
// ports.
type EngagementGateway struct {
	repo *newsdb.Repository
}

func NewEngagementGateway(repo *newsdb.Repository) *EngagementGateway {
	return &EngagementGateway{repo: repo}
}

func (g *EngagementGateway) FetchOpensWindow(ctx context.Context, userID int64, start, end time.Time) ([]engagement_port.OpenRecord, error) {
	rows, err := g.repo.FetchOpensWindow(ctx, userID, start, end)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to fetch opens window", err, map[string]interface{}{
			"user_id": userID,
		})
	}

	opens := make([]engagement_port.OpenRecord, 0, len(rows))
	for _, row := range rows {
		opens = append(opens, engagement_port.OpenRecord{
			ArticleID:    row.ArticleID,
			RawCategory:  row.RawCategory,
			OpenedAt:     row.OpenedAt,
			DwellSeconds: row.DwellSeconds,
		})
	}
	return opens, nil
}

func (g *EngagementGateway) FetchReadHistory(ctx context.Context, userID int64, start, end time.Time, limit, offset int) ([]domain.ReadHistoryEntry, int, error) {
	entries, total, err := g.repo.FetchReadHistory(ctx, userID, start, end, limit, offset)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("failed to fetch read history", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	return entries, total, nil
}

func (g *EngagementGateway) FetchSessionsOverlap(ctx context.Context, userID int64, start, end time.Time) ([]domain.UserSession, error) {
	sessions, err := g.repo.FetchSessionsOverlap(ctx, userID, start, end)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to fetch sessions", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	return sessions, nil
}
