package domain

// Per-category quota thresholds: readers who opened 10+ articles of a
// category in the trailing day get the largest section.
const (
	QuotaHigh    = 6
	QuotaMid     = 5
	QuotaDefault = 3
)

// QuotaFor derives a section quota from the trailing-24h read count.
func QuotaFor(readCount int) int {
	switch {
	case readCount >= 10:
		return QuotaHigh
	case readCount >= 5:
		return QuotaMid
	default:
		return QuotaDefault
	}
}

// FeedSection is one category block of the home feed. Computed per request,
// never persisted.
type FeedSection struct {
	Category  Category         `json:"category"`
	ReadToday int              `json:"read_today"`
	Limit     int              `json:"limit"`
	Pinned    bool             `json:"pinned"`
	Articles  []ArticleSummary `json:"articles"`
}

// HomeFeed is the full personalized feed response: always exactly one
// section per display category.
type HomeFeed struct {
	Date        string        `json:"date"`
	Seed        string        `json:"seed"`
	OrderForAll []Category    `json:"order_for_all"`
	Sections    []FeedSection `json:"sections"`
}
