package recommender_port

import "context"

// CompleteRecommendationsPort fetches the external recommender's combined
// similar/topics payload for one article. The payload shape is opaque;
// errors are surfaced here and swallowed by the caller, never by clients.
type CompleteRecommendationsPort interface {
	FetchComplete(ctx context.Context, articleID string, similarLimit, relatedLimit int) (map[string]any, error)
}

// RecommendPort fetches per-user recommendations for one article.
type RecommendPort interface {
	FetchRecommend(ctx context.Context, articleID string, userID int64) (map[string]any, error)
}

// SentimentAnalyzePort runs the upstream sentiment service over one
// article's text.
type SentimentAnalyzePort interface {
	Analyze(ctx context.Context, articleID, text string) (map[string]any, error)
}

// CleansePort runs the upstream cleansing service over one article's text.
type CleansePort interface {
	Cleanse(ctx context.Context, articleID, text string) (map[string]any, error)
}
