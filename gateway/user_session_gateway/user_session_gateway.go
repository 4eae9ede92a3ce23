package user_session_gateway

import (
	"context"
	"errors"

	"newscleanse/domain"
	"newscleanse/driver/newsdb"
	appErrors "newscleanse/utils/errors"
)

// UserSessionGateway adapts the app-session store to its ports.
type UserSessionGateway struct {
	repo *newsdb.Repository
}

func NewUserSessionGateway(repo *newsdb.Repository) *UserSessionGateway {
	return &UserSessionGateway{repo: repo}
}

func (g *UserSessionGateway) StartSession(ctx context.Context, userID int64) (int64, error) {
	id, err := g.repo.StartSession(ctx, userID)
	if err != nil {
		return 0, appErrors.DatabaseError("failed to start session", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	return id, nil
}

func (g *UserSessionGateway) EndSession(ctx context.Context, sessionID, userID int64) (int, error) {
	seconds, err := g.repo.EndSession(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserSessionNotFound) {
			return 0, err
		}
		return 0, appErrors.DatabaseError("failed to end session", err, map[string]interface{}{
			"session_id": sessionID,
			"user_id":    userID,
		})
	}
	return seconds, nil
}
