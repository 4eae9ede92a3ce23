package newsdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newscleanse/domain"
	"newscleanse/utils/logger"
)

const startSessionQuery = `
	INSERT INTO user_sessions (user_id, started_at)
	VALUES ($1, $2)
	RETURNING id
`

// StartSession opens an app session and returns its id.
func (r *Repository) StartSession(ctx context.Context, userID int64) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	var id int64
	err := r.pool.QueryRow(ctx, startSessionQuery, userID, time.Now().UTC()).Scan(&id)
	if err != nil {
		err = fmt.Errorf("start session: %w", err)
		logger.SafeErrorContext(ctx, "failed to start session", "user_id", userID, "error", err)
		return 0, err
	}

	logger.SafeInfoContext(ctx, "session started", "user_id", userID, "session_id", id)
	return id, nil
}

const lockSessionQuery = `
	SELECT started_at, ended_at
	FROM user_sessions
	WHERE id = $1 AND user_id = $2
	FOR UPDATE
`

const endSessionQuery = `
	UPDATE user_sessions
	SET ended_at = $2
	WHERE id = $1
`

// EndSession closes an app session and returns its elapsed seconds.
// Ending an already-ended session returns the originally recorded span.
func (r *Repository) EndSession(ctx context.Context, sessionID, userID int64) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin end session: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		startedAt time.Time
		endedAt   *time.Time
	)
	err = tx.QueryRow(ctx, lockSessionQuery, sessionID, userID).Scan(&startedAt, &endedAt)
	if err != nil {
		if isNoRows(err) {
			return 0, domain.ErrUserSessionNotFound
		}
		return 0, fmt.Errorf("lock session: %w", err)
	}

	end := time.Now().UTC()
	if endedAt != nil {
		end = *endedAt
	} else {
		if _, err := tx.Exec(ctx, endSessionQuery, sessionID, end); err != nil {
			return 0, fmt.Errorf("end session: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit end session: %w", err)
	}

	seconds := int(end.Sub(startedAt).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	return seconds, nil
}

const sessionsOverlapQuery = `
	SELECT id, user_id, started_at, ended_at
	FROM user_sessions
	WHERE user_id = $1
	  AND started_at < $3
	  AND (ended_at IS NULL OR ended_at > $2)
	ORDER BY started_at
`

// FetchSessionsOverlap returns the user's app sessions overlapping
// [start, end). Unclosed sessions come back with a nil end.
func (r *Repository) FetchSessionsOverlap(ctx context.Context, userID int64, start, end time.Time) ([]domain.UserSession, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, sessionsOverlapQuery, userID, start, end)
	if err != nil {
		err = fmt.Errorf("fetch sessions overlap: %w", err)
		logger.SafeErrorContext(ctx, "failed to fetch sessions", "user_id", userID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.UserSession
	for rows.Next() {
		var s domain.UserSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch sessions overlap: %w", err)
	}

	return sessions, nil
}
