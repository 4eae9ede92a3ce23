// Package timewindow computes civil-time aggregation windows against the
// configured application time zone. All analytics bucketing is wall-clock
// based, not UTC-instant based.
package timewindow

import "time"

// Mode selects how the aggregation window is anchored.
type Mode string

const (
	ModeDay     Mode = "day"     // today 00:00 .. tomorrow 00:00, civil
	ModeWeek    Mode = "week"    // this ISO week, Monday 00:00 .. +7d, civil
	ModeRolling Mode = "rolling" // trailing N days up to now
)

// ParseMode validates a mode string, falling back to def for anything
// unknown.
func ParseMode(s string, def Mode) Mode {
	switch Mode(s) {
	case ModeDay, ModeWeek, ModeRolling:
		return Mode(s)
	default:
		return def
	}
}

// StartOfDay truncates t to civil midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek truncates t to the most recent civil Monday midnight in loc,
// matching Postgres date_trunc('week').
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	// Weekday(): Sunday=0 .. Saturday=6; Monday-start offset.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// Bounds returns the half-open window [start, end) for the given mode.
// days only applies to rolling mode and is clamped to at least 1.
func Bounds(mode Mode, days int, now time.Time, loc *time.Location) (start, end time.Time) {
	if days < 1 {
		days = 1
	}
	switch mode {
	case ModeWeek:
		start = StartOfWeek(now, loc)
		return start, start.AddDate(0, 0, 7)
	case ModeRolling:
		end = now.In(loc)
		return end.AddDate(0, 0, -days), end
	default: // day
		start = StartOfDay(now, loc)
		return start, start.AddDate(0, 0, 1)
	}
}

// CivilDate renders t's calendar date in loc as YYYY-MM-DD.
func CivilDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
