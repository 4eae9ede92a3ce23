package newsdb

import (
	"context"
	"errors"
	"fmt"

	"newscleanse/domain"
	"newscleanse/utils/logger"
)

const articleStatsQuery = `
	SELECT COUNT(DISTINCT user_id), COALESCE(SUM(dwell_seconds), 0)
	FROM article_reads
	WHERE article_id = $1
`

// FetchArticleStats aggregates every read session of one article.
func (r *Repository) FetchArticleStats(ctx context.Context, articleID string) (*domain.ArticleStats, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var stats domain.ArticleStats
	err := r.pool.QueryRow(ctx, articleStatsQuery, articleID).Scan(&stats.Readers, &stats.TotalDwell)
	if err != nil {
		err = fmt.Errorf("fetch article stats: %w", err)
		logger.SafeErrorContext(ctx, "failed to fetch article stats", "article_id", articleID, "error", err)
		return nil, err
	}

	if stats.Readers > 0 {
		stats.AvgDwell = stats.TotalDwell / stats.Readers
	}

	return &stats, nil
}

const attitudeLookupQuery = `
	SELECT COALESCE(s.sentiment_classification, ''), %s
	FROM original_article a
	LEFT JOIN sentiment_articles s ON s.original_article_id = a.id
	WHERE a.id = $1
`

// FetchAttitude resolves the normalized attitude for one article id.
func (r *Repository) FetchAttitude(ctx context.Context, articleID string) (string, *int, error) {
	if r == nil || r.pool == nil {
		return "", nil, errors.New("database connection not available")
	}

	confidence := "NULL::int"
	if r.sentiment.HasConfidence {
		confidence = "s.confidence"
	}

	var (
		rawSentiment string
		conf         *int
	)
	err := r.pool.QueryRow(ctx, fmt.Sprintf(attitudeLookupQuery, confidence), articleID).Scan(&rawSentiment, &conf)
	if err != nil {
		if isNoRows(err) {
			return "", nil, domain.ErrArticleNotFound
		}
		err = fmt.Errorf("fetch attitude: %w", err)
		logger.SafeErrorContext(ctx, "failed to fetch attitude", "article_id", articleID, "error", err)
		return "", nil, err
	}

	return domain.NormalizeAttitude(rawSentiment), conf, nil
}
