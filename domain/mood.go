package domain

// BaselineStress is the neutral score each civil day starts at before that
// day's deltas are applied. Days do not carry over.
const BaselineStress = 50

// MoodDay is one day of the snapshot window.
type MoodDay struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// MoodWeekday aggregates snapshot day scores by day of week (0=Sunday).
type MoodWeekday struct {
	Dow   int  `json:"dow"`
	Avg   *int `json:"avg"`
	Count int  `json:"cnt"`
}

// MoodSnapshot is the daily/weekly stress view for one user.
type MoodSnapshot struct {
	Date     string        `json:"date"`
	Score    int           `json:"score"`
	Emoji    string        `json:"emoji"`
	Word     string        `json:"word"`
	Days     []MoodDay     `json:"days"`
	Week     []MoodWeekday `json:"week"`
	Baseline int           `json:"baseline"`
}

// MoodBand maps a day score onto its discrete band marker and label.
func MoodBand(score int) (emoji, word string) {
	switch {
	case score <= 20:
		return "😌", "very calm"
	case score <= 40:
		return "😊", "calm"
	case score <= 60:
		return "🙂", "neutral"
	case score <= 80:
		return "😟", "tense"
	default:
		return "😣", "anxious"
	}
}
