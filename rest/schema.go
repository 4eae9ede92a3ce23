package rest

import "time"

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OpenReadRequest starts a read session on an article.
type OpenReadRequest struct {
	UserID int64 `json:"user_id"`
}

// OpenReadResponse returns the (possibly resumed) read session id.
type OpenReadResponse struct {
	ReadID int64 `json:"read_id"`
}

// CloseReadRequest closes a read session.
type CloseReadRequest struct {
	UserID int64 `json:"user_id"`
	ReadID int64 `json:"read_id"`
}

// CloseReadResponse reports the dwell recorded at close.
type CloseReadResponse struct {
	DwellSeconds  int  `json:"dwell_seconds"`
	AlreadyClosed bool `json:"already_closed"`
}

// EventRecord is one raw client event. user_id stays untyped because
// clients send both numbers and strings.
type EventRecord struct {
	UserID    any            `json:"user_id"`
	EventType string         `json:"event_type"`
	ArticleID string         `json:"article_id"`
	Meta      map[string]any `json:"meta"`
	Timestamp *time.Time     `json:"ts"`
}

// IngestEventsRequest is a batch of client events.
type IngestEventsRequest struct {
	Events []EventRecord `json:"events"`
}

// MoodEventRequest records one mood delta.
type MoodEventRequest struct {
	UserID    int64      `json:"user_id"`
	Delta     int        `json:"delta"`
	Reason    string     `json:"reason"`
	Attitude  string     `json:"attitude"`
	ArticleID string     `json:"article_id"`
	Timestamp *time.Time `json:"ts"`
}

// MoodEventResponse returns the stored event id.
type MoodEventResponse struct {
	Inserted int64 `json:"inserted"`
}

// StartSessionRequest opens an app usage session.
type StartSessionRequest struct {
	UserID int64 `json:"user_id"`
}

// StartSessionResponse returns the session id.
type StartSessionResponse struct {
	SessionID int64 `json:"session_id"`
}

// EndSessionRequest closes an app usage session.
type EndSessionRequest struct {
	SessionID int64 `json:"session_id"`
	UserID    int64 `json:"user_id"`
}

// EndSessionResponse reports the elapsed seconds.
type EndSessionResponse struct {
	Seconds int `json:"seconds"`
}

// ArticleListResponse is one page of articles.
type ArticleListResponse struct {
	Items  any `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}
