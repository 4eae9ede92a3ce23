package mood_usecase

import (
	"context"
	"math"
	"time"

	"newscleanse/domain"
	"newscleanse/port/event_port"
	"newscleanse/utils/timewindow"
)

// snapshotDays is the fixed civil-day window of the mood snapshot. The
// days query parameter is accepted but pinned here.
const snapshotDays = 7

// MoodUsecase records mood deltas and folds them into the daily snapshot.
type MoodUsecase struct {
	recorder event_port.RecordMoodPort
	deltas   event_port.MoodDeltasPort
	loc      *time.Location
	now      func() time.Time
}

func NewMoodUsecase(recorder event_port.RecordMoodPort, deltas event_port.MoodDeltasPort, loc *time.Location) *MoodUsecase {
	return &MoodUsecase{
		recorder: recorder,
		deltas:   deltas,
		loc:      loc,
		now:      time.Now,
	}
}

// Record appends one mood event. A zero timestamp means now.
func (u *MoodUsecase) Record(ctx context.Context, ev *domain.MoodEvent) (int64, error) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = u.now().UTC()
	}
	return u.recorder.RecordMood(ctx, ev)
}

// Snapshot builds the trailing-week stress view. Each civil day starts at
// the baseline and adds that day's deltas; days never carry over.
func (u *MoodUsecase) Snapshot(ctx context.Context, userID int64) (*domain.MoodSnapshot, error) {
	now := u.now()
	today := timewindow.StartOfDay(now, u.loc)
	since := today.AddDate(0, 0, -(snapshotDays - 1))

	rows, err := u.deltas.FetchMoodDeltas(ctx, userID, since.UTC())
	if err != nil {
		return nil, err
	}

	// Deltas stay float64 until a day's sum is rounded once; per-row
	// truncation would drift fractional deltas.
	sums := make(map[string]float64)
	for _, row := range rows {
		day := timewindow.CivilDate(row.Timestamp, u.loc)
		sums[day] += row.Delta
	}

	days := make([]domain.MoodDay, 0, snapshotDays)
	weekdaySum := make([]int, 7)
	weekdayCnt := make([]int, 7)
	for i := 0; i < snapshotDays; i++ {
		d := since.AddDate(0, 0, i)
		date := timewindow.CivilDate(d, u.loc)
		score := domain.BaselineStress + int(math.Round(sums[date]))
		days = append(days, domain.MoodDay{Date: date, Score: score})

		dow := int(d.Weekday()) // Sunday=0
		weekdaySum[dow] += score
		weekdayCnt[dow]++
	}

	week := make([]domain.MoodWeekday, 7)
	for dow := 0; dow < 7; dow++ {
		week[dow] = domain.MoodWeekday{Dow: dow, Count: weekdayCnt[dow]}
		if weekdayCnt[dow] > 0 {
			avg := int(math.Round(float64(weekdaySum[dow]) / float64(weekdayCnt[dow])))
			week[dow].Avg = &avg
		}
	}

	todayDate := timewindow.CivilDate(now, u.loc)
	todayScore := domain.BaselineStress + int(math.Round(sums[todayDate]))
	emoji, word := domain.MoodBand(todayScore)

	return &domain.MoodSnapshot{
		Date:     todayDate,
		Score:    todayScore,
		Emoji:    emoji,
		Word:     word,
		Days:     days,
		Week:     week,
		Baseline: domain.BaselineStress,
	}, nil
}
