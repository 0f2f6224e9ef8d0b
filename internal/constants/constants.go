// Package constants defines shared constants for the questlog engine.
//
// This package MUST NOT import any other internal packages. Only the
// standard library is allowed, keeping it safe to import from anywhere.
package constants

import "time"

// AppName is the canonical application name used in paths and env prefixes.
const AppName = "questlog"

// EnvPrefix is the prefix for environment variable configuration overrides
// (e.g. QUESTLOG_ENGINE_FETCH_TIMEOUT).
const EnvPrefix = "QUESTLOG"

// ConfigDirName is the name of the per-project and global config directory.
const ConfigDirName = ".questlog"

// ConfigFileName is the name of the YAML configuration file.
const ConfigFileName = "config.yaml"

// DefaultFetchTimeout bounds a single collaborator fetch. A fetch that
// exceeds the deadline is treated exactly like a failed fetch: skipped,
// with a diagnostic event recorded.
const DefaultFetchTimeout = 10 * time.Second

// DefaultFetchConcurrency limits how many per-goal task fetches run at once.
const DefaultFetchConcurrency = 4

// DefaultUrgentWindowDays is the deadline proximity, in days, below which
// a goal is classified as urgent rather than on track.
const DefaultUrgentWindowDays = 7

// DefaultFallbackDailyRate is the fraction of a linked quest's target
// credited per elapsed day when no task records could be fetched at all.
// This is a degraded-data placeholder, not a measurement; results produced
// with it carry an explicit estimated flag.
const DefaultFallbackDailyRate = 0.20

// DefaultStatsWindowDays is the trailing window for quest statistics.
const DefaultStatsWindowDays = 30

// DefaultRecentWindowDays is the trailing window for the recent-activity count.
const DefaultRecentWindowDays = 7

// DefaultLogMaxSizeMB is the rotation threshold for the log file.
const DefaultLogMaxSizeMB = 10

// DefaultLogMaxBackups is how many rotated log files are retained.
const DefaultLogMaxBackups = 3

// DefaultLogMaxAgeDays is how long rotated log files are retained.
const DefaultLogMaxAgeDays = 30
