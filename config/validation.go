package config

import (
	"fmt"
	"time"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Server.Port)
	}
	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 || config.Server.IdleTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	if config.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1, got %d", config.Database.MaxConnections)
	}

	if config.Feed.LookbackDays < 1 {
		return fmt.Errorf("feed lookback days must be at least 1, got %d", config.Feed.LookbackDays)
	}
	if config.Feed.MaxPaginationLimit < 1 {
		return fmt.Errorf("max pagination limit must be at least 1, got %d", config.Feed.MaxPaginationLimit)
	}

	if config.External.RecoTimeout <= 0 {
		return fmt.Errorf("recommender timeout must be positive, got %v", config.External.RecoTimeout)
	}

	// The civil timezone drives every aggregation window; refuse to start
	// with one the runtime cannot load.
	if _, err := time.LoadLocation(config.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", config.App.Timezone, err)
	}

	return nil
}
