package config

import "github.com/questlabs/questlog/internal/errors"

// Validate checks a Config for values the engine cannot run with.
// It returns the first violation found, wrapped around the section's
// sentinel error so callers can categorize with errors.Is().
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validateEngine(&cfg.Engine); err != nil {
		return err
	}
	return validateStats(&cfg.Stats)
}

func validateEngine(e *EngineConfig) error {
	if e.FetchTimeout < 0 {
		return errors.Wrap(errors.ErrConfigInvalidEngine, "fetch_timeout cannot be negative")
	}
	if e.FetchConcurrency < 0 {
		return errors.Wrap(errors.ErrConfigInvalidEngine, "fetch_concurrency cannot be negative")
	}
	if e.UrgentWindowDays < 0 {
		return errors.Wrap(errors.ErrConfigInvalidEngine, "urgent_window_days cannot be negative")
	}
	if e.FallbackDailyRate < 0 || e.FallbackDailyRate > 1 {
		return errors.Wrap(errors.ErrConfigInvalidEngine, "fallback_daily_rate must be within [0,1]")
	}
	return nil
}

func validateStats(s *StatsConfig) error {
	if s.WindowDays < 0 {
		return errors.Wrap(errors.ErrConfigInvalidStats, "window_days cannot be negative")
	}
	if s.RecentWindowDays < 0 {
		return errors.Wrap(errors.ErrConfigInvalidStats, "recent_window_days cannot be negative")
	}
	if s.RecentWindowDays > s.WindowDays && s.WindowDays > 0 {
		return errors.Wrap(errors.ErrConfigInvalidStats, "recent_window_days cannot exceed window_days")
	}
	return nil
}
