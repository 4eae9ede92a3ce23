package domain

import "time"

// ReadSession is one open-to-close interval of a user viewing one article.
// Created on open; mutated exactly once on close to record closed_at and
// dwell; never deleted. At most one open session may exist per
// (user, article) pair, enforced by a partial unique index in the store.
type ReadSession struct {
	ID           int64      `json:"read_id"`
	UserID       int64      `json:"user_id"`
	ArticleID    string     `json:"article_id"`
	OpenedAt     time.Time  `json:"opened_at"`
	ClosedAt     *time.Time `json:"closed_at"`
	DwellSeconds int        `json:"dwell_seconds"`
}

// Closed reports whether the session has been closed.
func (s *ReadSession) Closed() bool {
	return s.ClosedAt != nil
}

// ReadHistoryEntry is one row of a user's read history joined with its
// article summary.
type ReadHistoryEntry struct {
	ReadID       int64          `json:"read_id"`
	OpenedAt     time.Time      `json:"opened_at"`
	ClosedAt     *time.Time     `json:"closed_at"`
	DwellSeconds int            `json:"dwell_seconds"`
	Article      ArticleSummary `json:"article"`
}

// UserSession is one app session (login to logout), distinct from read
// sessions. It backs the session-hour usage aggregation.
type UserSession struct {
	ID        int64      `json:"session_id"`
	UserID    int64      `json:"user_id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}
