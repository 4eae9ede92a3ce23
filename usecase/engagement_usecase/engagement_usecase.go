package engagement_usecase

import (
	"context"
	"math"
	"time"

	"newscleanse/domain"
	"newscleanse/port/engagement_port"
	"newscleanse/utils/timewindow"
)

// Metric selects what FieldStats aggregates per category.
const (
	MetricReads = "reads"
	MetricDwell = "dwell"
)

// EngagementUsecase aggregates a user's reading behaviour over civil-time
// windows. All bucketing happens in-process against the configured zone;
// the store only supplies raw rows.
type EngagementUsecase struct {
	opens    engagement_port.OpensWindowPort
	history  engagement_port.ReadHistoryPort
	sessions engagement_port.SessionsOverlapPort
	loc      *time.Location
	now      func() time.Time
}

func NewEngagementUsecase(opens engagement_port.OpensWindowPort, history engagement_port.ReadHistoryPort, sessions engagement_port.SessionsOverlapPort, loc *time.Location) *EngagementUsecase {
	return &EngagementUsecase{
		opens:    opens,
		history:  history,
		sessions: sessions,
		loc:      loc,
		now:      time.Now,
	}
}

// FieldStat is one category's value in the field chart.
type FieldStat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Count int    `json:"count"`
}

// FieldStatsResult always carries all six display categories, zero-filled.
type FieldStatsResult struct {
	FieldStats []FieldStat `json:"field_stats"`
	MaxValue   int         `json:"max_value"`
	Metric     string      `json:"metric"`
	Mode       string      `json:"mode"`
	Days       int         `json:"days"`
}

func (u *EngagementUsecase) FieldStats(ctx context.Context, userID int64, metric string, mode timewindow.Mode, days int) (*FieldStatsResult, error) {
	start, end := timewindow.Bounds(mode, days, u.now(), u.loc)
	opens, err := u.opens.FetchOpensWindow(ctx, userID, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}

	values := make(map[domain.Category]int)
	for _, open := range opens {
		c := domain.ClassifyCategory(open.ArticleID, open.RawCategory)
		if !domain.IsDisplayCategory(c) {
			continue
		}
		if metric == MetricDwell {
			values[c] += open.DwellSeconds
		} else {
			values[c]++
		}
	}

	stats := make([]FieldStat, 0, len(domain.Categories()))
	maxValue := 0
	for _, c := range domain.Categories() {
		v := values[c]
		stats = append(stats, FieldStat{Label: string(c), Value: v, Count: v})
		if v > maxValue {
			maxValue = v
		}
	}

	return &FieldStatsResult{
		FieldStats: stats,
		MaxValue:   maxValue,
		Metric:     metric,
		Mode:       string(mode),
		Days:       days,
	}, nil
}

// HourBin is one civil-hour activity count.
type HourBin struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// HourlyActivityResult carries 24 zero-filled civil-hour bins.
type HourlyActivityResult struct {
	Bins  []HourBin `json:"bins"`
	Total int       `json:"total"`
}

func (u *EngagementUsecase) HourlyActivity(ctx context.Context, userID int64, mode timewindow.Mode, days int) (*HourlyActivityResult, error) {
	start, end := timewindow.Bounds(mode, days, u.now(), u.loc)
	opens, err := u.opens.FetchOpensWindow(ctx, userID, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}

	counts := make([]int, 24)
	for _, open := range opens {
		counts[open.OpenedAt.In(u.loc).Hour()]++
	}

	bins := make([]HourBin, 24)
	total := 0
	for h := 0; h < 24; h++ {
		bins[h] = HourBin{Hour: h, Count: counts[h]}
		total += counts[h]
	}

	return &HourlyActivityResult{Bins: bins, Total: total}, nil
}

// SessionHourUsageResult carries per-civil-hour usage minutes summed over
// the window. Labels is always the 24 hours 0..23, matching bins by index.
type SessionHourUsageResult struct {
	Labels []int  `json:"labels"`
	Bins   []int  `json:"bins"`
	Mode   string `json:"mode"`
	Days   int    `json:"days"`
}

// SessionHourUsage clips the user's app sessions to the window, splits
// them at civil hour boundaries and attributes each fragment to its
// starting hour. Unclosed sessions run until now.
func (u *EngagementUsecase) SessionHourUsage(ctx context.Context, userID int64, mode timewindow.Mode, days int) (*SessionHourUsageResult, error) {
	now := u.now()
	start, end := timewindow.Bounds(mode, days, now, u.loc)
	sessions, err := u.sessions.FetchSessionsOverlap(ctx, userID, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}

	seconds := make([]float64, 24)
	for _, s := range sessions {
		sStart := s.StartedAt.In(u.loc)
		sEnd := now.In(u.loc)
		if s.EndedAt != nil {
			sEnd = s.EndedAt.In(u.loc)
		}

		if sStart.Before(start) {
			sStart = start
		}
		if sEnd.After(end) {
			sEnd = end
		}
		if !sEnd.After(sStart) {
			continue
		}

		for h := truncHour(sStart, u.loc); h.Before(sEnd); h = h.Add(time.Hour) {
			fragStart := sStart
			if h.After(fragStart) {
				fragStart = h
			}
			fragEnd := sEnd
			if hourEnd := h.Add(time.Hour); hourEnd.Before(fragEnd) {
				fragEnd = hourEnd
			}
			if fragEnd.After(fragStart) {
				seconds[h.Hour()] += fragEnd.Sub(fragStart).Seconds()
			}
		}
	}

	labels := make([]int, 24)
	bins := make([]int, 24)
	for h := 0; h < 24; h++ {
		labels[h] = h
		bins[h] = int(math.Round(seconds[h] / 60.0))
	}

	return &SessionHourUsageResult{Labels: labels, Bins: bins, Mode: string(mode), Days: days}, nil
}

func truncHour(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), 0, 0, 0, loc)
}

// UserTodayResult is the user's read count and dwell for the civil day.
type UserTodayResult struct {
	Reads      int `json:"reads"`
	TotalDwell int `json:"total_dwell"`
}

func (u *EngagementUsecase) UserToday(ctx context.Context, userID int64) (*UserTodayResult, error) {
	start, end := timewindow.Bounds(timewindow.ModeDay, 1, u.now(), u.loc)
	opens, err := u.opens.FetchOpensWindow(ctx, userID, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}

	result := &UserTodayResult{}
	for _, open := range opens {
		result.Reads++
		result.TotalDwell += open.DwellSeconds
	}
	return result, nil
}

// ReadsPage is one page of read history.
type ReadsPage struct {
	Items  []domain.ReadHistoryEntry `json:"items"`
	Limit  int                       `json:"limit"`
	Offset int                       `json:"offset"`
	Total  int                       `json:"total"`
}

// Reads lists the user's read history for the civil day or week.
func (u *EngagementUsecase) Reads(ctx context.Context, userID int64, mode timewindow.Mode, limit, offset int) (*ReadsPage, error) {
	start, end := timewindow.Bounds(mode, 1, u.now(), u.loc)
	items, total, err := u.history.FetchReadHistory(ctx, userID, start.UTC(), end.UTC(), limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.ReadHistoryEntry{}
	}
	return &ReadsPage{Items: items, Limit: limit, Offset: offset, Total: total}, nil
}
