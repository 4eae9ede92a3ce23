package newsdb

import (
	"context"
	"fmt"

	"newscleanse/utils/logger"
)

// SentimentSchema records which optional sentiment_articles columns exist
// in the connected database. Older deployments predate the HTML columns,
// so the repository probes once at startup and adjusts its queries.
type SentimentSchema struct {
	HasSummaryHTML       bool
	HasHighlightHTML     bool
	HasEvidenceSentences bool
	HasConfidence        bool
}

const probeSentimentColumnsQuery = `
	SELECT column_name
	FROM information_schema.columns
	WHERE table_schema = 'public' AND table_name = 'sentiment_articles'
`

func (r *Repository) ProbeSentimentSchema(ctx context.Context) (SentimentSchema, error) {
	var schema SentimentSchema
	if r == nil || r.pool == nil {
		return schema, fmt.Errorf("database connection not available")
	}

	rows, err := r.pool.Query(ctx, probeSentimentColumnsQuery)
	if err != nil {
		return schema, fmt.Errorf("probe sentiment schema: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return schema, fmt.Errorf("probe sentiment schema: %w", err)
		}
		switch name {
		case "summary_html":
			schema.HasSummaryHTML = true
		case "highlight_html":
			schema.HasHighlightHTML = true
		case "evidence_sentences":
			schema.HasEvidenceSentences = true
		case "confidence":
			schema.HasConfidence = true
		}
	}
	if err := rows.Err(); err != nil {
		return schema, fmt.Errorf("probe sentiment schema: %w", err)
	}

	logger.SafeInfoContext(ctx, "sentiment schema probed",
		"summary_html", schema.HasSummaryHTML,
		"highlight_html", schema.HasHighlightHTML,
		"evidence_sentences", schema.HasEvidenceSentences,
		"confidence", schema.HasConfidence)

	r.sentiment = schema
	return schema, nil
}
