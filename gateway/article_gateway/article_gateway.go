package article_gateway

import (
	"context"
	"errors"

	"newscleanse/domain"
	"newscleanse/driver/newsdb"
	"newscleanse/port/article_port"
	appErrors "newscleanse/utils/errors"
)

// ArticleGateway adapts the article store to the article ports. Domain
// sentinel errors pass through untouched; infrastructure failures wrap
// into AppError.
type ArticleGateway struct {
	repo *newsdb.Repository
}

func NewArticleGateway(repo *newsdb.Repository) *ArticleGateway {
	return &ArticleGateway{repo: repo}
}

func (g *ArticleGateway) FetchArticleDetail(ctx context.Context, articleID string) (*domain.ArticleDetail, error) {
	detail, err := g.repo.FetchArticleDetail(ctx, articleID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return nil, err
		}
		return nil, appErrors.DatabaseError("failed to fetch article", err, map[string]interface{}{
			"article_id": articleID,
		})
	}
	return detail, nil
}

func (g *ArticleGateway) ListArticles(ctx context.Context, q article_port.ArticleListQuery) ([]domain.ArticleDetail, int, error) {
	params := newsdb.ArticleListParams{
		Limit:  q.Limit,
		Offset: q.Offset,
		Press:  q.Press,
		Query:  q.Query,
	}
	if q.Category != "" {
		cat, ok := domain.CategoryFromString(q.Category)
		if !ok {
			return nil, 0, appErrors.ValidationError("unknown category", map[string]interface{}{
				"category": q.Category,
			})
		}
		params.Category = cat
	}

	articles, total, err := g.repo.ListArticles(ctx, params)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("failed to list articles", err, nil)
	}
	return articles, total, nil
}

func (g *ArticleGateway) FetchArticleStats(ctx context.Context, articleID string) (*domain.ArticleStats, error) {
	stats, err := g.repo.FetchArticleStats(ctx, articleID)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to fetch article stats", err, map[string]interface{}{
			"article_id": articleID,
		})
	}
	return stats, nil
}

func (g *ArticleGateway) FetchAttitude(ctx context.Context, articleID string) (string, *int, error) {
	attitude, confidence, err := g.repo.FetchAttitude(ctx, articleID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return "", nil, err
		}
		return "", nil, appErrors.DatabaseError("failed to fetch attitude", err, map[string]interface{}{
			"article_id": articleID,
		})
	}
	return attitude, confidence, nil
}

func (g *ArticleGateway) FetchLatestByCategory(ctx context.Context, articleID, category string, n int) ([]domain.ArticleSummary, error) {
	items, err := g.repo.FetchLatestByCategory(ctx, articleID, domain.Category(category), n)
	if err != nil {
		return nil, appErrors.DatabaseError("failed to fetch fallback recommendations", err, map[string]interface{}{
			"article_id": articleID,
			"category":   category,
		})
	}
	return items, nil
}
