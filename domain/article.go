package domain

import "time"

// Article mirrors one row of original_article. Rows are written by the
// upstream scraper and are immutable here apart from re-scrapes.
type Article struct {
	ID           string     `json:"id"`
	URL          string     `json:"url,omitempty"`
	Category     string     `json:"category,omitempty"`
	PublishedAt  *time.Time `json:"published_at"`
	Title        string     `json:"title,omitempty"`
	Content      string     `json:"content,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Reporter     string     `json:"reporter,omitempty"`
	Press        string     `json:"press,omitempty"`
	Keywords     string     `json:"keywords,omitempty"`
	ScrapedAt    *time.Time `json:"scraped_at"`
}

// RecencyAnchor returns the timestamp feed ordering falls back on:
// published time when present, scrape time otherwise.
func (a *Article) RecencyAnchor() *time.Time {
	if a.PublishedAt != nil {
		return a.PublishedAt
	}
	return a.ScrapedAt
}

// ArticleDetail is the single-article view joined with the sentiment and
// summary tables. Optional HTML fields are populated only when the probed
// sentiment columns exist.
type ArticleDetail struct {
	Article
	Attitude           string   `json:"attitude"`
	AttitudeConfidence *int     `json:"attitude_confidence"`
	EvidenceSentences  []string `json:"evidence_sentences"`
	SummaryItems       []string `json:"summary_items"`
	SummaryHTML        string   `json:"summary_html,omitempty"`
	HighlightHTML      string   `json:"highlight_html,omitempty"`
}

// ArticleSummary is the short article representation embedded in feed
// sections, read histories and fallback recommendations.
type ArticleSummary struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Category           string     `json:"category"`
	Press              string     `json:"press"`
	PublishedAt        *time.Time `json:"published_at"`
	ThumbnailURL       string     `json:"thumbnail_url"`
	Attitude           string     `json:"attitude,omitempty"`
	AttitudeConfidence *int       `json:"attitude_confidence,omitempty"`
}

// ArticleStats aggregates every read session of one article.
type ArticleStats struct {
	Readers    int `json:"readers"`
	TotalDwell int `json:"total_dwell"`
	AvgDwell   int `json:"avg_dwell"`
}
