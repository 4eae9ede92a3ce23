package domain

import "strings"

// Attitude labels attached to articles by the upstream sentiment service.
const (
	AttitudeFavorable = "favorable"
	AttitudeNeutral   = "neutral"
	AttitudeCritical  = "critical"
)

// NormalizeAttitude collapses the many spellings the sentiment service has
// shipped over time onto the three display labels. Unknown or empty input
// normalizes to neutral.
func NormalizeAttitude(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return AttitudeNeutral
	case strings.HasPrefix(s, "pos"), strings.HasPrefix(s, "favor"):
		return AttitudeFavorable
	case strings.HasPrefix(s, "neg"), strings.HasPrefix(s, "crit"):
		return AttitudeCritical
	case strings.HasPrefix(s, "neu"):
		return AttitudeNeutral
	default:
		return AttitudeNeutral
	}
}
