package read_session_gateway

import (
	"context"
	"errors"

	"newscleanse/domain"
	"newscleanse/driver/newsdb"
	"newscleanse/port/read_session_port"
	appErrors "newscleanse/utils/errors"
)

// ReadSessionGateway adapts the read-session store to its ports.
type ReadSessionGateway struct {
	repo *newsdb.Repository
}

func NewReadSessionGateway(repo *newsdb.Repository) *ReadSessionGateway {
	return &ReadSessionGateway{repo: repo}
}

func (g *ReadSessionGateway) OpenRead(ctx context.Context, userID int64, articleID string) (int64, error) {
	readID, err := g.repo.OpenRead(ctx, userID, articleID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return 0, err
		}
		return 0, appErrors.DatabaseError("failed to open read session", err, map[string]interface{}{
			"user_id":    userID,
			"article_id": articleID,
		})
	}
	return readID, nil
}

func (g *ReadSessionGateway) CloseRead(ctx context.Context, userID int64, articleID string, readID int64) (*read_session_port.CloseResult, error) {
	dwell, alreadyClosed, err := g.repo.CloseRead(ctx, userID, articleID, readID)
	if err != nil {
		if errors.Is(err, domain.ErrReadSessionNotFound) {
			return nil, err
		}
		return nil, appErrors.DatabaseError("failed to close read session", err, map[string]interface{}{
			"user_id": userID,
			"read_id": readID,
		})
	}
	return &read_session_port.CloseResult{DwellSeconds: dwell, AlreadyClosed: alreadyClosed}, nil
}
