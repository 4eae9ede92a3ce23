package article_port

import (
	"context"

	"newscleanse/domain"
)

// ArticleListQuery filters the article list endpoint.
type ArticleListQuery struct {
	Limit    int
	Offset   int
	Category string
	Press    string
	Query    string
}

// FetchArticleDetailPort loads one article joined with its sentiment and
// latest summary. Returns domain.ErrArticleNotFound when absent.
type FetchArticleDetailPort interface {
	FetchArticleDetail(ctx context.Context, articleID string) (*domain.ArticleDetail, error)
}

// ListArticlesPort returns a filtered article page plus the unpaged total.
type ListArticlesPort interface {
	ListArticles(ctx context.Context, q ArticleListQuery) ([]domain.ArticleDetail, int, error)
}

// ArticleStatsPort aggregates read sessions of one article.
type ArticleStatsPort interface {
	FetchArticleStats(ctx context.Context, articleID string) (*domain.ArticleStats, error)
}

// AttitudeLookupPort resolves the normalized attitude for one article.
// Returns domain.ErrArticleNotFound for unknown ids.
type AttitudeLookupPort interface {
	FetchAttitude(ctx context.Context, articleID string) (attitude string, confidence *int, err error)
}

// FallbackRecommendPort serves the latest same-category articles when the
// external recommender is unavailable.
type FallbackRecommendPort interface {
	FetchLatestByCategory(ctx context.Context, articleID, category string, n int) ([]domain.ArticleSummary, error)
}
