package article_usecase

import (
	"context"

	"newscleanse/domain"
	"newscleanse/port/article_port"
	"newscleanse/port/recommender_port"
	"newscleanse/utils/logger"

	"golang.org/x/sync/errgroup"
)

const fallbackModelVersion = "fallback-category-latest"

// ArticleUsecase serves article detail, listing, stats and the combined
// detail+recommendation views. External collaborator failures degrade to
// fallbacks; they never surface to clients.
type ArticleUsecase struct {
	details   article_port.FetchArticleDetailPort
	lister    article_port.ListArticlesPort
	stats     article_port.ArticleStatsPort
	attitudes article_port.AttitudeLookupPort
	fallback  article_port.FallbackRecommendPort

	complete  recommender_port.CompleteRecommendationsPort
	recommend recommender_port.RecommendPort
	sentiment recommender_port.SentimentAnalyzePort
	cleanse   recommender_port.CleansePort
}

func NewArticleUsecase(
	details article_port.FetchArticleDetailPort,
	lister article_port.ListArticlesPort,
	stats article_port.ArticleStatsPort,
	attitudes article_port.AttitudeLookupPort,
	fallback article_port.FallbackRecommendPort,
	complete recommender_port.CompleteRecommendationsPort,
	recommend recommender_port.RecommendPort,
	sentiment recommender_port.SentimentAnalyzePort,
	cleanse recommender_port.CleansePort,
) *ArticleUsecase {
	return &ArticleUsecase{
		details:   details,
		lister:    lister,
		stats:     stats,
		attitudes: attitudes,
		fallback:  fallback,
		complete:  complete,
		recommend: recommend,
		sentiment: sentiment,
		cleanse:   cleanse,
	}
}

// GetDetail loads one article. When the store carries no prebuilt
// highlight, one is derived from the evidence sentences over the content.
func (u *ArticleUsecase) GetDetail(ctx context.Context, articleID string) (*domain.ArticleDetail, error) {
	detail, err := u.details.FetchArticleDetail(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if detail.HighlightHTML == "" && len(detail.EvidenceSentences) > 0 {
		detail.HighlightHTML = domain.BuildHighlightHTML(detail.Content, detail.EvidenceSentences)
	}
	return detail, nil
}

func (u *ArticleUsecase) List(ctx context.Context, q article_port.ArticleListQuery) ([]domain.ArticleDetail, int, error) {
	return u.lister.ListArticles(ctx, q)
}

func (u *ArticleUsecase) Stats(ctx context.Context, articleID string) (*domain.ArticleStats, error) {
	return u.stats.FetchArticleStats(ctx, articleID)
}

// CompleteResult is the combined detail+recommendation view. Similar and
// Topics preserve whatever shape the recommender produced, with attitude
// fields injected per item.
type CompleteResult struct {
	Article         *domain.ArticleDetail `json:"article"`
	Recommendations Recommendations       `json:"recommendations"`
}

type Recommendations struct {
	Similar any `json:"similar"`
	Topics  any `json:"topics"`
}

// Complete returns an article with its recommender payload. Recommender
// failure of any kind falls back to empty recommendation lists.
func (u *ArticleUsecase) Complete(ctx context.Context, articleID string, similarLimit, relatedLimit int) (*CompleteResult, error) {
	detail, err := u.GetDetail(ctx, articleID)
	if err != nil {
		return nil, err
	}

	payload, err := u.complete.FetchComplete(ctx, articleID, similarLimit, relatedLimit)
	if err != nil {
		logger.SafeWarnContext(ctx, "recommender unavailable, serving empty recommendations",
			"article_id", articleID, "error", err)
		payload = map[string]any{
			"similar_articles": []any{},
			"related_topics":   []any{},
		}
	}

	rawSimilar := firstPresent(payload, "similar", "similar_articles")
	rawTopics := firstPresent(payload, "topics", "related_topics")

	lookup := u.attitudeLookup(ctx)
	return &CompleteResult{
		Article: detail,
		Recommendations: Recommendations{
			Similar: domain.NormalizeRecommendations(rawSimilar, lookup),
			Topics:  domain.NormalizeRecommendations(rawTopics, lookup),
		},
	}, nil
}

// Bundle returns an article together with sentiment, cleansed markup and
// per-user recommendations, fanned out concurrently. Each collaborator
// failure degrades independently.
func (u *ArticleUsecase) Bundle(ctx context.Context, articleID string, userID int64) (map[string]any, error) {
	detail, err := u.GetDetail(ctx, articleID)
	if err != nil {
		return nil, err
	}

	var senti, clnz, reco map[string]any
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if out, err := u.sentiment.Analyze(gctx, articleID, detail.Content); err == nil {
			senti = out
		} else {
			logger.SafeWarnContext(gctx, "sentiment analyze degraded", "article_id", articleID, "error", err)
		}
		return nil
	})
	g.Go(func() error {
		if out, err := u.cleanse.Cleanse(gctx, articleID, detail.Content); err == nil {
			clnz = out
		} else {
			logger.SafeWarnContext(gctx, "cleanse degraded", "article_id", articleID, "error", err)
		}
		return nil
	})
	g.Go(func() error {
		if out, err := u.recommend.FetchRecommend(gctx, articleID, userID); err == nil {
			reco = out
		} else {
			logger.SafeWarnContext(gctx, "recommender degraded", "article_id", articleID, "error", err)
		}
		return nil
	})
	_ = g.Wait()

	items, _ := recoItems(reco)
	if items == nil {
		category := string(domain.ClassifyCategory(detail.ID, detail.Category))
		fallbackItems, err := u.fallback.FetchLatestByCategory(ctx, articleID, category, 5)
		if err != nil {
			logger.SafeWarnContext(ctx, "fallback recommendations unavailable", "article_id", articleID, "error", err)
			fallbackItems = nil
		}
		list := make([]any, 0, len(fallbackItems))
		for _, item := range fallbackItems {
			list = append(list, item)
		}
		items = list
		reco = map[string]any{"items": items, "model_version": fallbackModelVersion}
	}

	article := map[string]any{
		"id":                  detail.ID,
		"url":                 detail.URL,
		"title":               detail.Title,
		"category":            detail.Category,
		"press":               detail.Press,
		"published_at":        detail.PublishedAt,
		"thumbnail_url":       detail.ThumbnailURL,
		"reporter":            detail.Reporter,
		"keywords":            detail.Keywords,
		"content":             detail.Content,
		"attitude":            detail.Attitude,
		"attitude_confidence": detail.AttitudeConfidence,
		"summary":             clnz["summary"],
		"cleaned_html":        clnz["cleaned_html"],
	}

	return map[string]any{
		"article":         article,
		"analysis":        map[string]any{"sentiment": senti},
		"recommendations": items,
	}, nil
}

// attitudeLookup adapts the attitude port to the normalizer's callback.
func (u *ArticleUsecase) attitudeLookup(ctx context.Context) domain.AttitudeLookup {
	return func(articleID string) (string, *int, bool) {
		attitude, confidence, err := u.attitudes.FetchAttitude(ctx, articleID)
		if err != nil {
			return "", nil, false
		}
		return attitude, confidence, true
	}
}

// firstPresent picks the first key holding a usable value. An empty list
// counts as absent so a later legacy key can still supply the data.
func firstPresent(payload map[string]any, keys ...string) any {
	for _, key := range keys {
		v, ok := payload[key]
		if !ok || v == nil {
			continue
		}
		if list, isList := v.([]any); isList && len(list) == 0 {
			continue
		}
		return v
	}
	return []any{}
}

func recoItems(reco map[string]any) ([]any, bool) {
	if reco == nil {
		return nil, false
	}
	items, ok := reco["items"].([]any)
	if !ok {
		return nil, false
	}
	return items, true
}
