package newsdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"newscleanse/domain"
	"newscleanse/utils/logger"

	"github.com/jackc/pgx/v5"
)

var articleDetailBaseQuery = `
	SELECT a.id, COALESCE(a.url, ''), COALESCE(a.category, ''), a.published_at,
	       COALESCE(a.title, ''), COALESCE(a.content, ''), COALESCE(a.thumbnail_url, ''),
	       COALESCE(a.reporter, ''), COALESCE(a.press, ''), COALESCE(a.keywords, ''), a.scraped_at,
	       COALESCE(s.sentiment_classification, ''), %s, %s, %s, %s,
	       sm.summary_content
	FROM original_article a
	LEFT JOIN sentiment_articles s ON s.original_article_id = a.id
	LEFT JOIN LATERAL (
		SELECT summary_content
		FROM summarized_articles
		WHERE original_article_id = a.id
		ORDER BY summarized_at DESC
		LIMIT 1
	) sm ON TRUE
	WHERE a.id = $1
`

// UseSentimentSchema fixes the sentiment column set for subsequent queries.
func (r *Repository) UseSentimentSchema(schema SentimentSchema) {
	r.sentiment = schema
}

func (r *Repository) articleDetailQuery() string {
	confidence := "NULL::int"
	if r.sentiment.HasConfidence {
		confidence = "s.confidence"
	}
	summaryHTML := "NULL::text"
	if r.sentiment.HasSummaryHTML {
		summaryHTML = "s.summary_html"
	}
	highlightHTML := "NULL::text"
	if r.sentiment.HasHighlightHTML {
		highlightHTML = "s.highlight_html"
	}
	evidence := "NULL::text"
	if r.sentiment.HasEvidenceSentences {
		evidence = "s.evidence_sentences::text"
	}
	return fmt.Sprintf(articleDetailBaseQuery, confidence, summaryHTML, highlightHTML, evidence)
}

// FetchArticleDetail loads one article with its sentiment row and latest
// summary. Returns domain.ErrArticleNotFound when the id matches nothing.
func (r *Repository) FetchArticleDetail(ctx context.Context, articleID string) (*domain.ArticleDetail, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var (
		detail        domain.ArticleDetail
		rawSentiment  string
		confidence    *int
		summaryHTML   *string
		highlightHTML *string
		rawEvidence   *string
		rawSummary    []byte
	)

	err := r.pool.QueryRow(ctx, r.articleDetailQuery(), articleID).Scan(
		&detail.ID,
		&detail.URL,
		&detail.Category,
		&detail.PublishedAt,
		&detail.Title,
		&detail.Content,
		&detail.ThumbnailURL,
		&detail.Reporter,
		&detail.Press,
		&detail.Keywords,
		&detail.ScrapedAt,
		&rawSentiment,
		&confidence,
		&summaryHTML,
		&highlightHTML,
		&rawEvidence,
		&rawSummary,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		err = fmt.Errorf("fetch article detail: %w", err)
		logger.SafeErrorContext(ctx, "failed to fetch article detail", "article_id", articleID, "error", err)
		return nil, err
	}

	detail.Attitude = domain.NormalizeAttitude(rawSentiment)
	detail.AttitudeConfidence = confidence
	if summaryHTML != nil {
		detail.SummaryHTML = *summaryHTML
	}
	if highlightHTML != nil {
		detail.HighlightHTML = *highlightHTML
	}
	if rawEvidence != nil {
		detail.EvidenceSentences = domain.ParseEvidenceList(*rawEvidence)
	}
	detail.SummaryItems = parseSummaryItems(rawSummary)

	return &detail, nil
}

// parseSummaryItems extracts bullet strings from a summary_content JSON
// value. The summarizer has written both bare arrays and objects with a
// summary key over time; anything unrecognizable yields nil.
func parseSummaryItems(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s := strings.TrimSpace(string(raw))
		if s == "" {
			return nil
		}
		return []string{s}
	}

	switch v := decoded.(type) {
	case []any:
		return stringItems(v)
	case map[string]any:
		for _, key := range []string{"summary", "items", "points"} {
			if arr, ok := v[key].([]any); ok {
				return stringItems(arr)
			}
		}
	case string:
		if v != "" {
			return []string{v}
		}
	}
	return nil
}

func stringItems(arr []any) []string {
	var out []string
	for _, item := range arr {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
