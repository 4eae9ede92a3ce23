package newsdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newscleanse/domain"
	"newscleanse/utils/logger"
)

// ArticleListParams filters the paged article listing.
type ArticleListParams struct {
	Limit    int
	Offset   int
	Category domain.Category
	Press    string
	Query    string
}

// listConditions builds the WHERE clause shared by the page and count
// queries. The category condition mirrors the in-process classifier: a
// known id prefix wins, a raw-category alias applies only to ids with no
// known prefix, everything else is Other.
func listConditions(p ArticleListParams) (string, []any) {
	var conds []string
	var args []any

	if p.Category != "" {
		prefixes := domain.PrefixesFor(p.Category)
		aliases := domain.AliasesFor(p.Category)
		if p.Category == domain.CategoryOther {
			args = append(args, domain.AllPrefixes())
			allPrefixArg := len(args)
			args = append(args, domain.AllAliases())
			conds = append(conds, fmt.Sprintf(
				"(lower(substr(a.id, 1, 3)) <> ALL($%d) AND lower(COALESCE(a.category, '')) <> ALL($%d))",
				allPrefixArg, len(args)))
		} else {
			args = append(args, prefixes)
			prefixArg := len(args)
			args = append(args, domain.AllPrefixes())
			allPrefixArg := len(args)
			args = append(args, aliases)
			conds = append(conds, fmt.Sprintf(
				"(lower(substr(a.id, 1, 3)) = ANY($%d) OR (lower(substr(a.id, 1, 3)) <> ALL($%d) AND lower(COALESCE(a.category, '')) = ANY($%d)))",
				prefixArg, allPrefixArg, len(args)))
		}
	}
	if p.Press != "" {
		args = append(args, p.Press)
		conds = append(conds, fmt.Sprintf("a.press = $%d", len(args)))
	}
	if p.Query != "" {
		args = append(args, "%"+p.Query+"%")
		conds = append(conds, fmt.Sprintf("(a.title ILIKE $%d OR a.content ILIKE $%d)", len(args), len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

const listArticlesSelect = `
	SELECT a.id, COALESCE(a.url, ''), COALESCE(a.category, ''), a.published_at,
	       COALESCE(a.title, ''), COALESCE(a.thumbnail_url, ''),
	       COALESCE(a.reporter, ''), COALESCE(a.press, ''), a.scraped_at,
	       COALESCE(s.sentiment_classification, ''), %s
	FROM original_article a
	LEFT JOIN sentiment_articles s ON s.original_article_id = a.id`

// ListArticles returns a filtered article page, newest first, plus the
// unpaged total.
func (r *Repository) ListArticles(ctx context.Context, p ArticleListParams) ([]domain.ArticleDetail, int, error) {
	if r == nil || r.pool == nil {
		return nil, 0, errors.New("database connection not available")
	}

	where, args := listConditions(p)

	countQuery := "SELECT COUNT(*) FROM original_article a" + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		err = fmt.Errorf("count articles: %w", err)
		logger.SafeErrorContext(ctx, "failed to count articles", "error", err)
		return nil, 0, err
	}

	confidence := "NULL::int"
	if r.sentiment.HasConfidence {
		confidence = "s.confidence"
	}
	pageQuery := fmt.Sprintf(listArticlesSelect, confidence) + where +
		fmt.Sprintf(" ORDER BY COALESCE(a.published_at, a.scraped_at) DESC NULLS LAST, a.id DESC LIMIT $%d OFFSET $%d",
			len(args)+1, len(args)+2)
	args = append(args, p.Limit, p.Offset)

	rows, err := r.pool.Query(ctx, pageQuery, args...)
	if err != nil {
		err = fmt.Errorf("list articles: %w", err)
		logger.SafeErrorContext(ctx, "failed to list articles", "error", err)
		return nil, 0, err
	}
	defer rows.Close()

	var articles []domain.ArticleDetail
	for rows.Next() {
		var (
			d            domain.ArticleDetail
			rawSentiment string
			confidence   *int
		)
		if err := rows.Scan(
			&d.ID, &d.URL, &d.Category, &d.PublishedAt,
			&d.Title, &d.ThumbnailURL,
			&d.Reporter, &d.Press, &d.ScrapedAt,
			&rawSentiment, &confidence,
		); err != nil {
			return nil, 0, fmt.Errorf("scan article row: %w", err)
		}
		d.Attitude = domain.NormalizeAttitude(rawSentiment)
		d.AttitudeConfidence = confidence
		articles = append(articles, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	return articles, total, nil
}
