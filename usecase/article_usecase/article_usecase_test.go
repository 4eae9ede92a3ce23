package article_usecase

import (
	"context"
	"errors"
	"testing"

	"newscleanse/domain"
	"newscleanse/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type usecaseMocks struct {
	details   *mocks.MockFetchArticleDetailPort
	lister    *mocks.MockListArticlesPort
	stats     *mocks.MockArticleStatsPort
	attitudes *mocks.MockAttitudeLookupPort
	fallback  *mocks.MockFallbackRecommendPort
	complete  *mocks.MockCompleteRecommendationsPort
	recommend *mocks.MockRecommendPort
	sentiment *mocks.MockSentimentAnalyzePort
	cleanse   *mocks.MockCleansePort
}

func newUsecase(ctrl *gomock.Controller) (*ArticleUsecase, *usecaseMocks) {
	m := &usecaseMocks{
		details:   mocks.NewMockFetchArticleDetailPort(ctrl),
		lister:    mocks.NewMockListArticlesPort(ctrl),
		stats:     mocks.NewMockArticleStatsPort(ctrl),
		attitudes: mocks.NewMockAttitudeLookupPort(ctrl),
		fallback:  mocks.NewMockFallbackRecommendPort(ctrl),
		complete:  mocks.NewMockCompleteRecommendationsPort(ctrl),
		recommend: mocks.NewMockRecommendPort(ctrl),
		sentiment: mocks.NewMockSentimentAnalyzePort(ctrl),
		cleanse:   mocks.NewMockCleansePort(ctrl),
	}
	u := NewArticleUsecase(m.details, m.lister, m.stats, m.attitudes, m.fallback,
		m.complete, m.recommend, m.sentiment, m.cleanse)
	return u, m
}

func sampleDetail() *domain.ArticleDetail {
	return &domain.ArticleDetail{
		Article: domain.Article{
			ID:       "eco123",
			Title:    "금리 인상",
			Category: "경제",
			Content:  "한국은행이 기준금리를 인상했다. 시장은 긴축 기조를 우려한다.",
		},
		Attitude: domain.AttitudeCritical,
	}
}

func TestArticleUsecase_GetDetail(t *testing.T) {
	t.Run("not found passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newUsecase(ctrl)

		m.details.EXPECT().FetchArticleDetail(gomock.Any(), "nope").
			Return(nil, domain.ErrArticleNotFound)

		_, err := u.GetDetail(context.Background(), "nope")
		require.ErrorIs(t, err, domain.ErrArticleNotFound)
	})

	t.Run("derives highlight from evidence when store has none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newUsecase(ctrl)

		detail := sampleDetail()
		detail.EvidenceSentences = []string{"시장은 긴축 기조를 우려한다."}
		m.details.EXPECT().FetchArticleDetail(gomock.Any(), "eco123").Return(detail, nil)

		got, err := u.GetDetail(context.Background(), "eco123")
		require.NoError(t, err)
		require.Contains(t, got.HighlightHTML, "<mark")
		require.Contains(t, got.HighlightHTML, "긴축 기조")
	})

	t.Run("keeps a prebuilt highlight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newUsecase(ctrl)

		detail := sampleDetail()
		detail.HighlightHTML = "<p>stored</p>"
		detail.EvidenceSentences = []string{"무시된다"}
		m.details.EXPECT().FetchArticleDetail(gomock.Any(), "eco123").Return(detail, nil)

		got, err := u.GetDetail(context.Background(), "eco123")
		require.NoError(t, err)
		require.Equal(t, "<p>stored</p>", got.HighlightHTML)
	})
}

func TestArticleUsecase_Complete(t *testing.T) {
	t.Run("injects attitudes into recommender payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newUsecase(ctrl)

		m.details.EXPECT().FetchArticleDetail(gomock.Any(), "eco123").Return(sampleDetail(), nil)
		m.complete.EXPECT().FetchComplete(gomock.Any(), "eco123", 5, 6).Return(map[string]any{
			"similar": map[string]any{
				"similar_articles": []any{map[string]any{"article_id": "eco200"}},
			},
			"topics": []any{"pol300"},
		}, nil)

		conf := 81
		m.attitudes.EXPECT().FetchAttitude(gomock.Any(), "eco200").
			Return(domain.AttitudeFavorable, &conf, nil)
		m.attitudes.EXPECT().FetchAttitude(gomock.Any(), "pol300").
			Return(domain.AttitudeNeutral, nil, nil)

		got, err := u.Complete(context.Background(), "eco123", 5, 6)
		require.NoError(t, err)

		similar := got.Recommendations.Similar.(map[string]any)
		items := similar["similar_articles"].([]any)
		first := items[0].(map[string]any)
		require.Equal(t, domain.AttitudeFavorable, first["attitude"])
		require.Equal(t, &conf, first["attitude_confidence"])

		topics := got.Recommendations.Topics.([]any)
		wrapped := topics[0].(map[string]any)
		require.Equal(t, "pol300", wrapped["article_id"])
		require.Equal(t, domain.AttitudeNeutral, wrapped["attitude"])
	})

	t.Run("empty modern key falls through to legacy key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newUsecase(ctrl)

		m.details.EXPECT().FetchArticleDetail(gomock.Any(), "eco123").Return(sampleDetail(), nil)
		m.complete.EXPECT().FetchComplete(gomock.Any(), "eco123", 5, 6).Return(map[string]any{
			"similar":          []any{},
			"similar_articles": []any{map[string]any{"article_id": "eco200"}},
			"topics":           []any{},
			"related_topics":   []any{map[string]any{"article_id": "pol300"}},
		}, nil)

		m.attitudes.EXPECT().FetchAttitude(gomock.Any(), "eco200").
			Return(domain.AttitudeCritical, nil, nil)
		m.attitudes.EXPECT().FetchAttitude(gomock.Any(), "pol300").
			Return(domain.AttitudeNeutral, nil, nil)

		got, err := u.Complete(context.Background(), "eco123", 5, 6)
		require.NoError(t, err)

		similar := got.Recommendations.Similar.([]any)
		require.Len(t, similar, 1)
		require.Equal(t, "eco200", similar[0].(map[string]any)["article_id"])

		topics := got.Recommendations.Topics.([]any)
		require.Len(t, topics, 1)
		require.Equal(t, "pol300", topics[0].(map[string]any)["article_id"])
	})

	t.Run("recommender failure degrades to empty lists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newUsecase(ctrl)

		m.details.EXPECT().FetchArticleDetail(gomock.Any(), "eco123").Return(sampleDetail(), nil)
		m.complete.EXPECT().FetchComplete(gomock.Any(), "eco123", 5, 6).
			Return(nil, errors.New("dial tcp: timeout"))

		got, err := u.Complete(context.Background(), "eco123", 5, 6)
		require.NoError(t, err)
		require.Empty(t, got.Recommendations.Similar)
		require.Empty(t, got.Recommendations.Topics)
	})
}

func TestArticleUsecase_Bundle(t *testing.T) {
	t.Run("degrades each collaborator independently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newUsecase(ctrl)

		detail := sampleDetail()
		m.details.EXPECT().FetchArticleDetail(gomock.Any(), "eco123").Return(detail, nil)
		m.sentiment.EXPECT().Analyze(gomock.Any(), "eco123", detail.Content).
			Return(map[string]any{"sentiment": "부정적"}, nil)
		m.cleanse.EXPECT().Cleanse(gomock.Any(), "eco123", detail.Content).
			Return(nil, errors.New("cleanse down"))
		m.recommend.EXPECT().FetchRecommend(gomock.Any(), "eco123", int64(7)).
			Return(nil, errors.New("reco down"))
		m.fallback.EXPECT().FetchLatestByCategory(gomock.Any(), "eco123", string(domain.CategoryEconomy), 5).
			Return([]domain.ArticleSummary{{ID: "eco200", Title: "다른 기사"}}, nil)

		got, err := u.Bundle(context.Background(), "eco123", 7)
		require.NoError(t, err)

		analysis := got["analysis"].(map[string]any)
		require.Equal(t, map[string]any{"sentiment": "부정적"}, analysis["sentiment"].(map[string]any))

		article := got["article"].(map[string]any)
		require.Nil(t, article["summary"])

		items := got["recommendations"].([]any)
		require.Len(t, items, 1)
	})

	t.Run("uses recommender items when available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newUsecase(ctrl)

		detail := sampleDetail()
		m.details.EXPECT().FetchArticleDetail(gomock.Any(), "eco123").Return(detail, nil)
		m.sentiment.EXPECT().Analyze(gomock.Any(), "eco123", detail.Content).Return(map[string]any{}, nil)
		m.cleanse.EXPECT().Cleanse(gomock.Any(), "eco123", detail.Content).
			Return(map[string]any{"summary": "요약", "cleaned_html": "<p>본문</p>"}, nil)
		m.recommend.EXPECT().FetchRecommend(gomock.Any(), "eco123", int64(7)).
			Return(map[string]any{"items": []any{map[string]any{"id": "eco300"}}}, nil)

		got, err := u.Bundle(context.Background(), "eco123", 7)
		require.NoError(t, err)

		article := got["article"].(map[string]any)
		require.Equal(t, "요약", article["summary"])

		items := got["recommendations"].([]any)
		require.Len(t, items, 1)
	})
}
