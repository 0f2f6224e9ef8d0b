package progress

import (
	"github.com/questlabs/questlog/internal/clock"
	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/diag"
)

// Options holds the shared knobs for the progress calculators.
// The zero value is usable; nil/zero fields fall back to defaults.
type Options struct {
	// Clock supplies the current time (defaults to the system clock).
	Clock clock.Clock

	// Recorder receives diagnostic events (defaults to discarding them).
	Recorder diag.Recorder

	// Concurrency limits simultaneous per-goal task fetches.
	// Defaults to constants.DefaultFetchConcurrency.
	Concurrency int

	// FallbackDailyRate is the fraction of a linked quest's target credited
	// per elapsed day when no task records could be fetched at all.
	// Defaults to constants.DefaultFallbackDailyRate.
	FallbackDailyRate float64

	// DisableFallback turns the degraded time-based estimate off entirely,
	// so missing data reads as a measured 0% instead of an estimate.
	DisableFallback bool
}

// withDefaults fills unset fields with their defaults.
func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = clock.RealClock{}
	}
	if o.Recorder == nil {
		o.Recorder = diag.NopRecorder{}
	}
	if o.Concurrency <= 0 {
		o.Concurrency = constants.DefaultFetchConcurrency
	}
	if o.FallbackDailyRate <= 0 {
		o.FallbackDailyRate = constants.DefaultFallbackDailyRate
	}
	return o
}
