// Package config provides configuration management for questlog with
// layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. Environment variables (QUESTLOG_* prefix)
//  2. Project config (.questlog/config.yaml)
//  3. Global config (~/.questlog/config.yaml)
//  4. Built-in defaults
//
// Each higher level overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and
// internal/errors, but MUST NOT import internal/domain or other internal
// packages.
package config

import "time"

// Config is the root configuration structure for questlog.
type Config struct {
	// Engine contains settings for the progress computation engine.
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`

	// Stats contains settings for the statistics aggregator.
	Stats StatsConfig `yaml:"stats" mapstructure:"stats"`

	// Log contains settings for the rotating log file.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// EngineConfig contains settings for the progress computation engine.
type EngineConfig struct {
	// FetchTimeout bounds a single collaborator fetch. A fetch exceeding
	// the deadline is treated exactly like a failed fetch.
	// Default: 10s
	FetchTimeout time.Duration `yaml:"fetch_timeout" mapstructure:"fetch_timeout"`

	// FetchConcurrency limits simultaneous per-goal task fetches.
	// Default: 4
	FetchConcurrency int `yaml:"fetch_concurrency" mapstructure:"fetch_concurrency"`

	// UrgentWindowDays is the deadline proximity, in days, below which a
	// goal is classified urgent rather than on track.
	// Default: 7
	UrgentWindowDays int `yaml:"urgent_window_days" mapstructure:"urgent_window_days"`

	// FallbackDailyRate is the fraction of a linked quest's target
	// credited per elapsed day when no task records could be fetched.
	// Default: 0.20
	FallbackDailyRate float64 `yaml:"fallback_daily_rate" mapstructure:"fallback_daily_rate"`

	// DisableFallback turns the degraded time-based estimate off, so
	// missing data reads as a measured 0% instead of an estimate.
	// Default: false
	DisableFallback bool `yaml:"disable_fallback" mapstructure:"disable_fallback"`
}

// StatsConfig contains settings for the statistics aggregator.
type StatsConfig struct {
	// WindowDays is the trailing statistics window.
	// Default: 30
	WindowDays int `yaml:"window_days" mapstructure:"window_days"`

	// RecentWindowDays is the trailing recent-activity window.
	// Default: 7
	RecentWindowDays int `yaml:"recent_window_days" mapstructure:"recent_window_days"`
}

// LogConfig contains settings for the rotating log file.
type LogConfig struct {
	// MaxSizeMB is the rotation threshold for the log file.
	// Default: 10
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is how many rotated log files are retained.
	// Default: 3
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is how long rotated log files are retained.
	// Default: 30
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`
}
