package feed_gateway

import (
	"context"

	"newscleanse/domain"
	"newscleanse/driver/newsdb"
	"newscleanse/port/feed_port"
	appErrors "newscleanse/utils/errors"
)

// FeedGateway adapts the candidate store to the feed port.
type FeedGateway struct {
	repo *newsdb.Repository
}

func NewFeedGateway(repo *newsdb.Repository) *FeedGateway {
	return &FeedGateway{repo: repo}
}

func (g *FeedGateway) FetchCandidates(ctx context.Context, q feed_port.CandidateQuery) ([]feed_port.FeedCandidate, error) {
	rows, err := g.repo.FetchFeedCandidates(ctx, newsdb.FeedCandidateParams{
		AnchorSince:        q.AnchorSince,
		ExcludeUserID:      q.ExcludeUserID,
		ExcludeOpenedSince: q.ExcludeOpenedSince,
	})
	if err != nil {
		return nil, appErrors.DatabaseError("failed to fetch feed candidates", err, nil)
	}

	candidates := make([]feed_port.FeedCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, feed_port.FeedCandidate{
			ID:                 row.ID,
			Title:              row.Title,
			Press:              row.Press,
			RawCategory:        row.RawCategory,
			ThumbnailURL:       row.ThumbnailURL,
			PublishedAt:        row.PublishedAt,
			ScrapedAt:          row.ScrapedAt,
			Attitude:           domain.NormalizeAttitude(row.RawSentiment),
			AttitudeConfidence: row.AttitudeConfidence,
		})
	}
	return candidates, nil
}
