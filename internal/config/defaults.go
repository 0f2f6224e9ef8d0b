package config

import (
	"github.com/spf13/viper"

	"github.com/questlabs/questlog/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are the base layer that config files and environment
// variables override.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			// FetchTimeout: 10s keeps one slow collaborator from stalling
			// a whole quest-card render; a timeout is just a skipped fetch.
			FetchTimeout: constants.DefaultFetchTimeout,

			// FetchConcurrency: 4 parallel per-goal fetches.
			FetchConcurrency: constants.DefaultFetchConcurrency,

			// UrgentWindowDays: goals due within a week read as urgent.
			UrgentWindowDays: constants.DefaultUrgentWindowDays,

			// FallbackDailyRate: 20% of target per elapsed day when no
			// task records could be fetched at all.
			FallbackDailyRate: constants.DefaultFallbackDailyRate,
		},
		Stats: StatsConfig{
			WindowDays:       constants.DefaultStatsWindowDays,
			RecentWindowDays: constants.DefaultRecentWindowDays,
		},
		Log: LogConfig{
			MaxSizeMB:  constants.DefaultLogMaxSizeMB,
			MaxBackups: constants.DefaultLogMaxBackups,
			MaxAgeDays: constants.DefaultLogMaxAgeDays,
		},
	}
}

// setDefaults registers the default values on a Viper instance so that
// partial config files merge over a complete base.
func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.fetch_timeout", constants.DefaultFetchTimeout)
	v.SetDefault("engine.fetch_concurrency", constants.DefaultFetchConcurrency)
	v.SetDefault("engine.urgent_window_days", constants.DefaultUrgentWindowDays)
	v.SetDefault("engine.fallback_daily_rate", constants.DefaultFallbackDailyRate)
	v.SetDefault("engine.disable_fallback", false)
	v.SetDefault("stats.window_days", constants.DefaultStatsWindowDays)
	v.SetDefault("stats.recent_window_days", constants.DefaultRecentWindowDays)
	v.SetDefault("log.max_size_mb", constants.DefaultLogMaxSizeMB)
	v.SetDefault("log.max_backups", constants.DefaultLogMaxBackups)
	v.SetDefault("log.max_age_days", constants.DefaultLogMaxAgeDays)
}
