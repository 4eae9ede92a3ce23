package domain

import "testing"

func TestMoodBand(t *testing.T) {
	tests := []struct {
		score     int
		wantEmoji string
		wantWord  string
	}{
		{0, "😌", "very calm"},
		{20, "😌", "very calm"},
		{21, "😊", "calm"},
		{40, "😊", "calm"},
		{50, "🙂", "neutral"},
		{60, "🙂", "neutral"},
		{61, "😟", "tense"},
		{80, "😟", "tense"},
		{81, "😣", "anxious"},
		{140, "😣", "anxious"},
	}
	for _, tt := range tests {
		emoji, word := MoodBand(tt.score)
		if emoji != tt.wantEmoji || word != tt.wantWord {
			t.Errorf("MoodBand(%d) = (%s, %s), want (%s, %s)",
				tt.score, emoji, word, tt.wantEmoji, tt.wantWord)
		}
	}
}

func TestNormalizeAttitude(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"positive", AttitudeFavorable},
		{"POS", AttitudeFavorable},
		{"favorable", AttitudeFavorable},
		{" negative ", AttitudeCritical},
		{"neg", AttitudeCritical},
		{"critical", AttitudeCritical},
		{"neutral", AttitudeNeutral},
		{"neu", AttitudeNeutral},
		{"", AttitudeNeutral},
		{"gibberish", AttitudeNeutral},
	}
	for _, tt := range tests {
		if got := NormalizeAttitude(tt.raw); got != tt.want {
			t.Errorf("NormalizeAttitude(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
