package newsdb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"newscleanse/utils/logger"
)

// FeedCandidateRow is one raw home-feed candidate. Classification and
// ranking happen in-process, so the row carries the raw category.
type FeedCandidateRow struct {
	ID                 string
	Title              string
	Press              string
	RawCategory        string
	ThumbnailURL       string
	PublishedAt        *time.Time
	ScrapedAt          *time.Time
	RawSentiment       string
	AttitudeConfidence *int
}

// FeedCandidateParams narrows the candidate search for one fill phase.
type FeedCandidateParams struct {
	AnchorSince        *time.Time
	ExcludeUserID      int64
	ExcludeOpenedSince time.Time
}

const feedCandidatesSelect = `
	SELECT a.id, COALESCE(a.title, ''), COALESCE(a.press, ''), COALESCE(a.category, ''),
	       COALESCE(a.thumbnail_url, ''), a.published_at, a.scraped_at,
	       COALESCE(s.sentiment_classification, ''), %s
	FROM original_article a
	LEFT JOIN sentiment_articles s ON s.original_article_id = a.id`

// FetchFeedCandidates returns candidate articles for a fill phase.
func (r *Repository) FetchFeedCandidates(ctx context.Context, p FeedCandidateParams) ([]FeedCandidateRow, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var conds []string
	var args []any

	if p.AnchorSince != nil {
		args = append(args, *p.AnchorSince)
		conds = append(conds, fmt.Sprintf("COALESCE(a.published_at, a.scraped_at) >= $%d", len(args)))
	}
	if p.ExcludeUserID > 0 {
		args = append(args, p.ExcludeUserID)
		userArg := len(args)
		args = append(args, p.ExcludeOpenedSince)
		conds = append(conds, fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM article_reads ar WHERE ar.user_id = $%d AND ar.article_id = a.id AND ar.opened_at >= $%d)",
			userArg, len(args)))
	}

	confidence := "NULL::int"
	if r.sentiment.HasConfidence {
		confidence = "s.confidence"
	}
	query := fmt.Sprintf(feedCandidatesSelect, confidence)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		err = fmt.Errorf("fetch feed candidates: %w", err)
		logger.SafeErrorContext(ctx, "failed to fetch feed candidates", "error", err)
		return nil, err
	}
	defer rows.Close()

	var candidates []FeedCandidateRow
	for rows.Next() {
		var c FeedCandidateRow
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Press, &c.RawCategory,
			&c.ThumbnailURL, &c.PublishedAt, &c.ScrapedAt,
			&c.RawSentiment, &c.AttitudeConfidence,
		); err != nil {
			return nil, fmt.Errorf("scan feed candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch feed candidates: %w", err)
	}

	return candidates, nil
}
