package newsdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newscleanse/utils/logger"
)

// OpenRow is one read-session open joined with its article's raw category.
type OpenRow struct {
	ArticleID    string
	RawCategory  string
	OpenedAt     time.Time
	DwellSeconds int
}

const opensWindowQuery = `
	SELECT ar.article_id, COALESCE(a.category, ''), ar.opened_at, COALESCE(ar.dwell_seconds, 0)
	FROM article_reads ar
	LEFT JOIN original_article a ON a.id = ar.article_id
	WHERE ar.user_id = $1 AND ar.opened_at >= $2 AND ar.opened_at < $3
	ORDER BY ar.opened_at
`

// FetchOpensWindow returns a user's read-session opens inside [start, end).
func (r *Repository) FetchOpensWindow(ctx context.Context, userID int64, start, end time.Time) ([]OpenRow, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, opensWindowQuery, userID, start, end)
	if err != nil {
		err = fmt.Errorf("fetch opens window: %w", err)
		logger.SafeErrorContext(ctx, "failed to fetch opens window", "user_id", userID, "error", err)
		return nil, err
	}
	defer rows.Close()

	var opens []OpenRow
	for rows.Next() {
		var o OpenRow
		if err := rows.Scan(&o.ArticleID, &o.RawCategory, &o.OpenedAt, &o.DwellSeconds); err != nil {
			return nil, fmt.Errorf("scan open row: %w", err)
		}
		opens = append(opens, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch opens window: %w", err)
	}

	return opens, nil
}
