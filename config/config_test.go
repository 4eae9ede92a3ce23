package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, 60, cfg.Feed.LookbackDays)
	require.Equal(t, "Asia/Seoul", cfg.App.Timezone)
	require.Equal(t, 5*time.Second, cfg.External.RecoTimeout)
	require.Equal(t, 25, cfg.Database.MaxConnections)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8123")
	t.Setenv("FEED_LOOKBACK_DAYS", "14")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("RECO_API_TIMEOUT", "2s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, 8123, cfg.Server.Port)
	require.Equal(t, 14, cfg.Feed.LookbackDays)
	require.Equal(t, "UTC", cfg.App.Timezone)
	require.Equal(t, 2*time.Second, cfg.External.RecoTimeout)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad port", key: "SERVER_PORT", value: "0"},
		{name: "unparseable port", key: "SERVER_PORT", value: "not-a-number"},
		{name: "zero lookback", key: "FEED_LOOKBACK_DAYS", value: "0"},
		{name: "unknown timezone", key: "APP_TIMEZONE", value: "Mars/Olympus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := NewConfig()
			require.Error(t, err)
		})
	}
}
