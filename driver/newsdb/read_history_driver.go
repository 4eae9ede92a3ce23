package newsdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newscleanse/domain"
	"newscleanse/utils/logger"
)

const readHistoryCountQuery = `
	SELECT COUNT(*)
	FROM article_reads
	WHERE user_id = $1 AND opened_at >= $2 AND opened_at < $3
`

const readHistoryPageQuery = `
	SELECT ar.id, ar.opened_at, ar.closed_at, COALESCE(ar.dwell_seconds, 0),
	       ar.article_id, COALESCE(a.title, ''), COALESCE(a.category, ''), COALESCE(a.press, ''),
	       a.published_at, COALESCE(a.thumbnail_url, ''),
	       COALESCE(s.sentiment_classification, '')
	FROM article_reads ar
	LEFT JOIN original_article a ON a.id = ar.article_id
	LEFT JOIN sentiment_articles s ON s.original_article_id = ar.article_id
	WHERE ar.user_id = $1 AND ar.opened_at >= $2 AND ar.opened_at < $3
	ORDER BY ar.opened_at DESC, ar.id DESC
	LIMIT $4 OFFSET $5
`

// FetchReadHistory returns a page of read history inside [start, end),
// newest first, plus the unpaged total.
func (r *Repository) FetchReadHistory(ctx context.Context, userID int64, start, end time.Time, limit, offset int) ([]domain.ReadHistoryEntry, int, error) {
	if r == nil || r.pool == nil {
		return nil, 0, errors.New("database connection not available")
	}

	var total int
	if err := r.pool.QueryRow(ctx, readHistoryCountQuery, userID, start, end).Scan(&total); err != nil {
		err = fmt.Errorf("count read history: %w", err)
		logger.SafeErrorContext(ctx, "failed to count read history", "user_id", userID, "error", err)
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, readHistoryPageQuery, userID, start, end, limit, offset)
	if err != nil {
		err = fmt.Errorf("fetch read history: %w", err)
		logger.SafeErrorContext(ctx, "failed to fetch read history", "user_id", userID, "error", err)
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.ReadHistoryEntry
	for rows.Next() {
		var (
			e            domain.ReadHistoryEntry
			rawSentiment string
		)
		if err := rows.Scan(
			&e.ReadID, &e.OpenedAt, &e.ClosedAt, &e.DwellSeconds,
			&e.Article.ID, &e.Article.Title, &e.Article.Category, &e.Article.Press,
			&e.Article.PublishedAt, &e.Article.ThumbnailURL,
			&rawSentiment,
		); err != nil {
			return nil, 0, fmt.Errorf("scan read history row: %w", err)
		}
		e.Article.Category = string(domain.ClassifyCategory(e.Article.ID, e.Article.Category))
		e.Article.Attitude = domain.NormalizeAttitude(rawSentiment)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("fetch read history: %w", err)
	}

	return entries, total, nil
}
