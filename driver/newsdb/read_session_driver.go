package newsdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newscleanse/domain"
	"newscleanse/utils/logger"
)

const articleExistsQuery = `
	SELECT EXISTS (SELECT 1 FROM original_article WHERE id = $1)
`

const findOpenReadQuery = `
	SELECT id FROM article_reads
	WHERE user_id = $1 AND article_id = $2 AND closed_at IS NULL
	LIMIT 1
`

const insertReadQuery = `
	INSERT INTO article_reads (user_id, article_id, opened_at, dwell_seconds)
	VALUES ($1, $2, $3, 0)
	RETURNING id
`

const insertEventQuery = `
	INSERT INTO user_events (user_id, event_type, article_id, meta, ts)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
`

// OpenRead starts a read session, or returns the already-open one for the
// same (user, article) pair. A fresh open also appends the article_open
// event inside the same transaction.
func (r *Repository) OpenRead(ctx context.Context, userID int64, articleID string) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, articleExistsQuery, articleID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("check article exists: %w", err)
	}
	if !exists {
		return 0, domain.ErrArticleNotFound
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin open read: %w", err)
	}
	defer tx.Rollback(ctx)

	var readID int64
	err = tx.QueryRow(ctx, findOpenReadQuery, userID, articleID).Scan(&readID)
	if err == nil {
		// Idempotent re-open: hand the existing session back without a
		// duplicate event.
		if err := tx.Commit(ctx); err != nil {
			return 0, fmt.Errorf("commit open read: %w", err)
		}
		logger.SafeInfoContext(ctx, "read session resumed", "user_id", userID, "article_id", articleID, "read_id", readID)
		return readID, nil
	}
	if !isNoRows(err) {
		return 0, fmt.Errorf("find open read: %w", err)
	}

	now := time.Now().UTC()
	if err := tx.QueryRow(ctx, insertReadQuery, userID, articleID, now).Scan(&readID); err != nil {
		return 0, fmt.Errorf("insert read: %w", err)
	}

	var eventID int64
	err = tx.QueryRow(ctx, insertEventQuery,
		userID, domain.EventTypeArticleOpen, articleID, map[string]any{"read_id": readID}, now,
	).Scan(&eventID)
	if err != nil {
		return 0, fmt.Errorf("insert open event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit open read: %w", err)
	}

	logger.SafeInfoContext(ctx, "read session opened", "user_id", userID, "article_id", articleID, "read_id", readID)
	return readID, nil
}

const lockReadQuery = `
	SELECT opened_at, closed_at, dwell_seconds
	FROM article_reads
	WHERE id = $1 AND user_id = $2 AND article_id = $3
	FOR UPDATE
`

const closeReadQuery = `
	UPDATE article_reads
	SET closed_at = $2, dwell_seconds = $3
	WHERE id = $1
`

// CloseRead closes a read session and appends the article_close event in
// one transaction. A second close of the same session is accepted and
// returns the dwell recorded the first time.
func (r *Repository) CloseRead(ctx context.Context, userID int64, articleID string, readID int64) (dwell int, alreadyClosed bool, err error) {
	if r == nil || r.pool == nil {
		return 0, false, errors.New("database connection not available")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("begin close read: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		openedAt     time.Time
		closedAt     *time.Time
		dwellSeconds int
	)
	err = tx.QueryRow(ctx, lockReadQuery, readID, userID, articleID).Scan(&openedAt, &closedAt, &dwellSeconds)
	if err != nil {
		if isNoRows(err) {
			return 0, false, domain.ErrReadSessionNotFound
		}
		return 0, false, fmt.Errorf("lock read: %w", err)
	}

	if closedAt != nil {
		if err := tx.Commit(ctx); err != nil {
			return 0, false, fmt.Errorf("commit close read: %w", err)
		}
		return dwellSeconds, true, nil
	}

	now := time.Now().UTC()
	dwell = int(now.Sub(openedAt).Seconds())
	if dwell < 0 {
		dwell = 0
	}

	if _, err := tx.Exec(ctx, closeReadQuery, readID, now, dwell); err != nil {
		return 0, false, fmt.Errorf("close read: %w", err)
	}

	var eventID int64
	err = tx.QueryRow(ctx, insertEventQuery,
		userID, domain.EventTypeArticleClose, articleID, map[string]any{"read_id": readID, "dwell_seconds": dwell}, now,
	).Scan(&eventID)
	if err != nil {
		return 0, false, fmt.Errorf("insert close event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, false, fmt.Errorf("commit close read: %w", err)
	}

	logger.SafeInfoContext(ctx, "read session closed", "user_id", userID, "read_id", readID, "dwell_seconds", dwell)
	return dwell, false, nil
}
