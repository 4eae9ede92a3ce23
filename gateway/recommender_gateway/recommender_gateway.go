package recommender_gateway

import (
	"context"

	"newscleanse/driver/recoapi"
	appErrors "newscleanse/utils/errors"
)

// RecommenderGateway adapts the external service client to the
// recommender ports. Errors are wrapped for logging; usecases degrade to
// fallbacks instead of surfacing them.
type RecommenderGateway struct {
	client *recoapi.Client
}

func NewRecommenderGateway(client *recoapi.Client) *RecommenderGateway {
	return &RecommenderGateway{client: client}
}

func (g *RecommenderGateway) FetchComplete(ctx context.Context, articleID string, similarLimit, relatedLimit int) (map[string]any, error) {
	payload, err := g.client.FetchComplete(ctx, articleID, similarLimit, relatedLimit)
	if err != nil {
		return nil, appErrors.ExternalAPIError("recommender complete call failed", err, map[string]interface{}{
			"article_id": articleID,
		})
	}
	return payload, nil
}

func (g *RecommenderGateway) FetchRecommend(ctx context.Context, articleID string, userID int64) (map[string]any, error) {
	payload, err := g.client.FetchRecommend(ctx, articleID, userID)
	if err != nil {
		return nil, appErrors.ExternalAPIError("recommender call failed", err, map[string]interface{}{
			"article_id": articleID,
			"user_id":    userID,
		})
	}
	return payload, nil
}

func (g *RecommenderGateway) Analyze(ctx context.Context, articleID, text string) (map[string]any, error) {
	payload, err := g.client.Analyze(ctx, articleID, text)
	if err != nil {
		return nil, appErrors.ExternalAPIError("sentiment analyze call failed", err, map[string]interface{}{
			"article_id": articleID,
		})
	}
	return payload, nil
}

func (g *RecommenderGateway) Cleanse(ctx context.Context, articleID, text string) (map[string]any, error) {
	payload, err := g.client.Cleanse(ctx, articleID, text)
	if err != nil {
		return nil, appErrors.ExternalAPIError("cleanse call failed", err, map[string]interface{}{
			"article_id": articleID,
		})
	}
	return payload, nil
}
