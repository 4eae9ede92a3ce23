package newsdb

import (
	"context"
	"errors"
	"fmt"

	"newscleanse/domain"
	"newscleanse/utils/logger"
)

const fallbackRecommendQuery = `
	SELECT a.id, COALESCE(a.title, ''), COALESCE(a.category, ''), COALESCE(a.press, ''),
	       a.published_at, COALESCE(a.thumbnail_url, ''),
	       COALESCE(s.sentiment_classification, '')
	FROM original_article a
	LEFT JOIN sentiment_articles s ON s.original_article_id = a.id
	WHERE a.id <> $1
	  AND (lower(substr(a.id, 1, 3)) = ANY($2) OR lower(COALESCE(a.category, '')) = ANY($3))
	ORDER BY COALESCE(a.published_at, a.scraped_at) DESC NULLS LAST, a.id DESC
	LIMIT $4
`

// FetchLatestByCategory serves the same-category latest articles used when
// the external recommender is unreachable.
func (r *Repository) FetchLatestByCategory(ctx context.Context, articleID string, category domain.Category, n int) ([]domain.ArticleSummary, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}
	if n <= 0 {
		return nil, nil
	}

	prefixes := domain.PrefixesFor(category)
	aliases := domain.AliasesFor(category)

	rows, err := r.pool.Query(ctx, fallbackRecommendQuery, articleID, prefixes, aliases, n)
	if err != nil {
		err = fmt.Errorf("fetch latest by category: %w", err)
		logger.SafeErrorContext(ctx, "failed to fetch fallback recommendations", "category", category, "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []domain.ArticleSummary
	for rows.Next() {
		var (
			s            domain.ArticleSummary
			rawSentiment string
		)
		if err := rows.Scan(&s.ID, &s.Title, &s.Category, &s.Press, &s.PublishedAt, &s.ThumbnailURL, &rawSentiment); err != nil {
			return nil, fmt.Errorf("scan fallback recommendation: %w", err)
		}
		s.Category = string(domain.ClassifyCategory(s.ID, s.Category))
		s.Attitude = domain.NormalizeAttitude(rawSentiment)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch latest by category: %w", err)
	}

	return out, nil
}
