package read_session_port

import "context"

// OpenReadPort starts (or resumes) a read session. When the user already
// has an open session for the article, its id is returned instead of
// creating a duplicate. A fresh open also appends an article_open event in
// the same transaction.
type OpenReadPort interface {
	OpenRead(ctx context.Context, userID int64, articleID string) (readID int64, err error)
}

// CloseResult reports the dwell recorded during close.
type CloseResult struct {
	DwellSeconds  int
	AlreadyClosed bool
}

// CloseReadPort closes a read session, recording dwell and appending the
// article_close event together. Returns domain.ErrReadSessionNotFound when
// (readID, userID, articleID) match no row; closing an already-closed
// session is accepted and returns the recorded dwell.
type CloseReadPort interface {
	CloseRead(ctx context.Context, userID int64, articleID string, readID int64) (*CloseResult, error)
}
