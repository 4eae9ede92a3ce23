package recoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"newscleanse/utils/logger"
	"newscleanse/utils/metrics"
	"newscleanse/utils/rate_limiter"
)

// Client talks to the external recommender, sentiment and cleanse
// services. Every method returns an error on any failure; callers degrade
// to fallbacks instead of surfacing these to end users.
type Client struct {
	recommenderBase string
	sentimentBase   string
	cleanseBase     string
	httpClient      *http.Client
	limiter         *rate_limiter.HostRateLimiter
}

func NewClient(recommenderBase, sentimentBase, cleanseBase string, timeout time.Duration, rateInterval time.Duration) *Client {
	return &Client{
		recommenderBase: strings.TrimRight(recommenderBase, "/"),
		sentimentBase:   strings.TrimRight(sentimentBase, "/"),
		cleanseBase:     strings.TrimRight(cleanseBase, "/"),
		httpClient:      &http.Client{Timeout: timeout},
		limiter:         rate_limiter.NewHostRateLimiter(rateInterval),
	}
}

// FetchComplete calls the recommender's complete endpoint for one article.
func (c *Client) FetchComplete(ctx context.Context, articleID string, similarLimit, relatedLimit int) (map[string]any, error) {
	if c.recommenderBase == "" {
		return nil, fmt.Errorf("recommender base URL not configured")
	}

	endpoint := fmt.Sprintf("%s/api/recommendations/complete/%s", c.recommenderBase, url.PathEscape(articleID))
	params := url.Values{
		"similar_limit": {strconv.Itoa(similarLimit)},
		"related_limit": {strconv.Itoa(relatedLimit)},
	}

	return c.getJSON(ctx, "recommender", endpoint+"?"+params.Encode())
}

// FetchRecommend calls the recommender's per-user recommend endpoint.
func (c *Client) FetchRecommend(ctx context.Context, articleID string, userID int64) (map[string]any, error) {
	if c.recommenderBase == "" {
		return nil, fmt.Errorf("recommender base URL not configured")
	}

	params := url.Values{
		"article_id": {articleID},
		"user_id":    {strconv.FormatInt(userID, 10)},
	}

	return c.getJSON(ctx, "recommender", c.recommenderBase+"/recommend?"+params.Encode())
}

// Analyze submits article text for sentiment analysis.
func (c *Client) Analyze(ctx context.Context, articleID, text string) (map[string]any, error) {
	if c.sentimentBase == "" {
		return nil, fmt.Errorf("sentiment base URL not configured")
	}
	return c.postJSON(ctx, "sentiment", c.sentimentBase+"/analyze", articleID, text)
}

// Cleanse submits article text for markup cleansing and summarization.
func (c *Client) Cleanse(ctx context.Context, articleID, text string) (map[string]any, error) {
	if c.cleanseBase == "" {
		return nil, fmt.Errorf("cleanse base URL not configured")
	}
	return c.postJSON(ctx, "cleanse", c.cleanseBase+"/cleanse", articleID, text)
}

func (c *Client) getJSON(ctx context.Context, service, endpoint string) (map[string]any, error) {
	if err := c.limiter.WaitForHost(ctx, endpoint); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(ctx, service, req)
}

func (c *Client) postJSON(ctx context.Context, service, endpoint, articleID, text string) (map[string]any, error) {
	if err := c.limiter.WaitForHost(ctx, endpoint); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(map[string]string{"article_id": articleID, "text": text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(ctx, service, req)
}

func (c *Client) do(ctx context.Context, service string, req *http.Request) (map[string]any, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ExternalCallFailures.WithLabelValues(service).Inc()
		logger.SafeWarnContext(ctx, "external call failed", "service", service, "error", err)
		return nil, fmt.Errorf("%s call: %w", service, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ExternalCallFailures.WithLabelValues(service).Inc()
		return nil, fmt.Errorf("%s read body: %w", service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ExternalCallFailures.WithLabelValues(service).Inc()
		logger.SafeWarnContext(ctx, "external call returned non-2xx", "service", service, "status", resp.StatusCode)
		return nil, fmt.Errorf("%s call: status %d", service, resp.StatusCode)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		metrics.ExternalCallFailures.WithLabelValues(service).Inc()
		return nil, fmt.Errorf("%s decode body: %w", service, err)
	}

	return payload, nil
}
