package user_session_port

import "context"

// StartSessionPort opens an app session and returns its id.
type StartSessionPort interface {
	StartSession(ctx context.Context, userID int64) (sessionID int64, err error)
}

// EndSessionPort closes an app session, idempotently, and returns the
// elapsed seconds. Returns domain.ErrUserSessionNotFound on a mismatched
// (sessionID, userID) pair.
type EndSessionPort interface {
	EndSession(ctx context.Context, sessionID, userID int64) (seconds int, err error)
}
