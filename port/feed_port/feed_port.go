package feed_port

import (
	"context"
	"time"
)

// FeedCandidate is one raw candidate row for the home feed fill. The
// assembler classifies and ranks in-process, so the row keeps the raw
// category next to the display fields.
type FeedCandidate struct {
	ID                 string
	Title              string
	Press              string
	RawCategory        string
	ThumbnailURL       string
	PublishedAt        *time.Time
	ScrapedAt          *time.Time
	Attitude           string
	AttitudeConfidence *int
}

// RecencyAnchor is the published time with scrape-time fallback.
func (c *FeedCandidate) RecencyAnchor() *time.Time {
	if c.PublishedAt != nil {
		return c.PublishedAt
	}
	return c.ScrapedAt
}

// CandidateQuery describes one phase of the candidate search.
type CandidateQuery struct {
	// AnchorSince drops articles whose recency anchor is older; nil
	// searches the full corpus.
	AnchorSince *time.Time
	// ExcludeUserID, when >0, removes articles that user opened at or
	// after ExcludeOpenedSince.
	ExcludeUserID      int64
	ExcludeOpenedSince time.Time
}

// FeedCandidatePort fetches candidate articles for the bucket fill.
type FeedCandidatePort interface {
	FetchCandidates(ctx context.Context, q CandidateQuery) ([]FeedCandidate, error)
}
