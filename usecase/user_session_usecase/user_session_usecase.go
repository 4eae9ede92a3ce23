package user_session_usecase

import (
	"context"

	"newscleanse/port/user_session_port"
)

// UserSessionUsecase opens and closes app-level usage sessions.
type UserSessionUsecase struct {
	starter user_session_port.StartSessionPort
	ender   user_session_port.EndSessionPort
}

func NewUserSessionUsecase(starter user_session_port.StartSessionPort, ender user_session_port.EndSessionPort) *UserSessionUsecase {
	return &UserSessionUsecase{starter: starter, ender: ender}
}

func (u *UserSessionUsecase) Start(ctx context.Context, userID int64) (int64, error) {
	return u.starter.StartSession(ctx, userID)
}

func (u *UserSessionUsecase) End(ctx context.Context, sessionID, userID int64) (int, error) {
	return u.ender.EndSession(ctx, sessionID, userID)
}
