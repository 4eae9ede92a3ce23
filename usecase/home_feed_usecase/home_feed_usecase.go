package home_feed_usecase

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"newscleanse/domain"
	"newscleanse/port/engagement_port"
	"newscleanse/port/feed_port"
	"newscleanse/utils/logger"
	"newscleanse/utils/timewindow"
)

// HomeFeedUsecase assembles the personalized home feed: per-category
// quotas from the trailing day's reads, then a deterministic three-phase
// bucket fill ranked by a daily seed.
type HomeFeedUsecase struct {
	candidates   feed_port.FeedCandidatePort
	opens        engagement_port.OpensWindowPort
	lookbackDays int
	loc          *time.Location
	now          func() time.Time
}

func NewHomeFeedUsecase(candidates feed_port.FeedCandidatePort, opens engagement_port.OpensWindowPort, lookbackDays int, loc *time.Location) *HomeFeedUsecase {
	return &HomeFeedUsecase{
		candidates:   candidates,
		opens:        opens,
		lookbackDays: lookbackDays,
		loc:          loc,
		now:          time.Now,
	}
}

// DailySeed derives the per-user ranking seed for one civil date.
func DailySeed(userID int64, civilDate string) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%d:%s", userID, civilDate)))
	return hex.EncodeToString(sum[:])[:8]
}

func rankKey(articleID, seed string) string {
	sum := md5.Sum([]byte(articleID + seed))
	return hex.EncodeToString(sum[:])
}

func (u *HomeFeedUsecase) Execute(ctx context.Context, userID int64, excludeRead bool) (*domain.HomeFeed, error) {
	now := u.now().In(u.loc)
	civilDate := timewindow.CivilDate(now, u.loc)
	seed := DailySeed(userID, civilDate)
	dayAgo := now.Add(-24 * time.Hour)

	readCounts, err := u.readCounts(ctx, userID, dayAgo, now)
	if err != nil {
		return nil, err
	}

	limits := make(map[domain.Category]int, len(readCounts))
	maxLimit := 0
	for _, c := range domain.Categories() {
		limits[c] = domain.QuotaFor(readCounts[c])
		if limits[c] > maxLimit {
			maxLimit = limits[c]
		}
	}

	bucket := make(map[domain.Category][]domain.ArticleSummary)
	seen := make(map[domain.Category]map[string]bool)
	for _, c := range domain.Categories() {
		bucket[c] = []domain.ArticleSummary{}
		seen[c] = make(map[string]bool)
	}

	exclusion := feed_port.CandidateQuery{}
	if excludeRead {
		exclusion.ExcludeUserID = userID
		exclusion.ExcludeOpenedSince = dayAgo
	}

	// Phase 1: seeded ranking inside the lookback window.
	lookbackStart := timewindow.StartOfDay(now, u.loc).AddDate(0, 0, -u.lookbackDays)
	phase1 := exclusion
	phase1.AnchorSince = &lookbackStart
	if err := u.fillSeeded(ctx, phase1, seed, limits, maxLimit, bucket, seen); err != nil {
		return nil, err
	}

	// Phase 2: same ranking over the full corpus.
	if shortfall(limits, bucket) > 0 {
		if err := u.fillSeeded(ctx, exclusion, seed, limits, maxLimit, bucket, seen); err != nil {
			return nil, err
		}
	}

	// Phase 3: drop the read exclusion, newest first, capped at the
	// largest remaining shortfall.
	if maxNeed := shortfall(limits, bucket); maxNeed > 0 {
		if err := u.fillRecent(ctx, maxNeed, limits, bucket, seen); err != nil {
			return nil, err
		}
	}

	order := make([]domain.Category, len(domain.Categories()))
	copy(order, domain.Categories())
	sort.SliceStable(order, func(i, j int) bool {
		if readCounts[order[i]] != readCounts[order[j]] {
			return readCounts[order[i]] > readCounts[order[j]]
		}
		return order[i] < order[j]
	})

	sections := make([]domain.FeedSection, 0, len(order))
	for _, c := range order {
		sections = append(sections, domain.FeedSection{
			Category:  c,
			ReadToday: readCounts[c],
			Limit:     limits[c],
			Pinned:    limits[c] > domain.QuotaDefault,
			Articles:  bucket[c],
		})
	}

	logger.SafeInfoContext(ctx, "home feed assembled", "user_id", userID, "date", civilDate, "seed", seed)

	return &domain.HomeFeed{
		Date:        civilDate,
		Seed:        seed,
		OrderForAll: order,
		Sections:    sections,
	}, nil
}

func (u *HomeFeedUsecase) readCounts(ctx context.Context, userID int64, start, end time.Time) (map[domain.Category]int, error) {
	opens, err := u.opens.FetchOpensWindow(ctx, userID, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Category]int, len(domain.Categories()))
	for _, c := range domain.Categories() {
		counts[c] = 0
	}
	for _, open := range opens {
		c := domain.ClassifyCategory(open.ArticleID, open.RawCategory)
		if domain.IsDisplayCategory(c) {
			counts[c]++
		}
	}
	return counts, nil
}

// fillSeeded appends candidates in seeded-rank order until each bucket
// reaches its limit. Duplicates never enter a bucket twice.
func (u *HomeFeedUsecase) fillSeeded(ctx context.Context, q feed_port.CandidateQuery, seed string, limits map[domain.Category]int, maxLimit int, bucket map[domain.Category][]domain.ArticleSummary, seen map[domain.Category]map[string]bool) error {
	candidates, err := u.candidates.FetchCandidates(ctx, q)
	if err != nil {
		return err
	}

	grouped := groupByCategory(candidates)
	for c, items := range grouped {
		sort.Slice(items, func(i, j int) bool {
			return rankKey(items[i].ID, seed) < rankKey(items[j].ID, seed)
		})
		if len(items) > maxLimit {
			items = items[:maxLimit]
		}
		appendToBucket(c, items, limits, bucket, seen)
	}
	return nil
}

// fillRecent appends the newest candidates per category, at most maxNeed
// from each, ignoring the read exclusion entirely.
func (u *HomeFeedUsecase) fillRecent(ctx context.Context, maxNeed int, limits map[domain.Category]int, bucket map[domain.Category][]domain.ArticleSummary, seen map[domain.Category]map[string]bool) error {
	candidates, err := u.candidates.FetchCandidates(ctx, feed_port.CandidateQuery{})
	if err != nil {
		return err
	}

	grouped := groupByCategory(candidates)
	for c, items := range grouped {
		sort.Slice(items, func(i, j int) bool {
			ti, tj := items[i].RecencyAnchor(), items[j].RecencyAnchor()
			switch {
			case ti == nil && tj == nil:
				return items[i].ID > items[j].ID
			case ti == nil:
				return false
			case tj == nil:
				return true
			case ti.Equal(*tj):
				return items[i].ID > items[j].ID
			default:
				return ti.After(*tj)
			}
		})
		if len(items) > maxNeed {
			items = items[:maxNeed]
		}
		appendToBucket(c, items, limits, bucket, seen)
	}
	return nil
}

func groupByCategory(candidates []feed_port.FeedCandidate) map[domain.Category][]feed_port.FeedCandidate {
	grouped := make(map[domain.Category][]feed_port.FeedCandidate)
	for _, cand := range candidates {
		c := domain.ClassifyCategory(cand.ID, cand.RawCategory)
		if domain.IsDisplayCategory(c) {
			grouped[c] = append(grouped[c], cand)
		}
	}
	return grouped
}

func appendToBucket(c domain.Category, items []feed_port.FeedCandidate, limits map[domain.Category]int, bucket map[domain.Category][]domain.ArticleSummary, seen map[domain.Category]map[string]bool) {
	for _, item := range items {
		if len(bucket[c]) >= limits[c] {
			return
		}
		if seen[c][item.ID] {
			continue
		}
		seen[c][item.ID] = true
		bucket[c] = append(bucket[c], domain.ArticleSummary{
			ID:                 item.ID,
			Title:              item.Title,
			Category:           string(c),
			Press:              item.Press,
			PublishedAt:        item.PublishedAt,
			ThumbnailURL:       item.ThumbnailURL,
			Attitude:           item.Attitude,
			AttitudeConfidence: item.AttitudeConfidence,
		})
	}
}

func shortfall(limits map[domain.Category]int, bucket map[domain.Category][]domain.ArticleSummary) int {
	maxNeed := 0
	for c, limit := range limits {
		if need := limit - len(bucket[c]); need > maxNeed {
			maxNeed = need
		}
	}
	return maxNeed
}
