package domain

import (
	"time"

	"github.com/questlabs/questlog/internal/constants"
)

// ProgressResult is the normalized output shape shared by both progress
// models. Presentation code renders every quest card from this one struct;
// kind-specific breakdowns hang off the Linked/Quantitative pointers.
//
// Invariants maintained by Normalize:
//   - Percentage is clamped to [0,100]
//   - Remaining is max(0, Total-Completed)
type ProgressResult struct {
	// QuestID identifies the quest this result was computed for.
	QuestID string `json:"quest_id"`

	// Kind is the quest's declared progress model.
	Kind constants.QuestKind `json:"kind"`

	// Percentage is the normalized progress in [0,100].
	Percentage float64 `json:"percentage"`

	// Status is the normalized progress status.
	Status constants.ProgressStatus `json:"status"`

	// Completed is the number of qualifying completions observed.
	Completed int `json:"completed"`

	// Total is the number of items required (linked-task count or target).
	Total int `json:"total"`

	// Remaining is max(0, Total-Completed).
	Remaining int `json:"remaining"`

	// EstimatedCompletion is the linearly extrapolated completion instant
	// (nil when no estimate applies).
	EstimatedCompletion *time.Time `json:"estimated_completion,omitempty"`

	// LastUpdated is when this result was computed.
	LastUpdated time.Time `json:"last_updated"`

	// Estimated is true when Percentage was extrapolated from elapsed time
	// because no task records could be fetched. Such a value is a
	// degraded-data placeholder, not a measurement.
	Estimated bool `json:"estimated,omitempty"`

	// Error carries a descriptive message when the computation degraded
	// (empty on success). A result with Error set is still renderable.
	Error string `json:"error,omitempty"`

	// Linked holds the linked-kind sub-breakdowns (nil for quantitative).
	Linked *LinkedBreakdown `json:"linked,omitempty"`

	// Quantitative holds the quantitative-kind breakdown (nil for linked).
	Quantitative *QuantitativeBreakdown `json:"quantitative,omitempty"`
}

// SubProgress is a completed/total pair with its own percentage, used for
// the goal and task sub-breakdowns of a linked quest.
type SubProgress struct {
	// Completed is the number of completed items.
	Completed int `json:"completed"`

	// Total is the number of items tracked.
	Total int `json:"total"`

	// Percentage is Completed/Total in [0,100] (0 when Total is 0).
	Percentage float64 `json:"percentage"`
}

// NewSubProgress builds a SubProgress with its percentage derived and clamped.
func NewSubProgress(completed, total int) SubProgress {
	sp := SubProgress{Completed: completed, Total: total}
	if total > 0 {
		sp.Percentage = ClampPercent(float64(completed) / float64(total) * 100)
	}
	return sp
}

// LinkedBreakdown carries the per-entity sub-breakdowns of a linked quest.
type LinkedBreakdown struct {
	// Goals tracks linked goals whose linked tasks are all complete.
	Goals SubProgress `json:"goals"`

	// Tasks tracks the quest's linked task set.
	Tasks SubProgress `json:"tasks"`
}

// QuantitativeBreakdown carries the counting detail of a quantitative quest.
type QuantitativeBreakdown struct {
	// Target is the completion count to reach.
	Target int `json:"target"`

	// Current is the qualifying completions counted inside the window.
	Current int `json:"current"`

	// Scope is which entity type was counted.
	Scope constants.CountScope `json:"scope"`

	// PeriodDays is the window length in days.
	PeriodDays int `json:"period_days"`

	// WindowStart is the resolved window start (zero if unresolved).
	WindowStart time.Time `json:"window_start"`

	// WindowEnd is the resolved window end (zero if unresolved).
	WindowEnd time.Time `json:"window_end"`

	// RatePerDay is the observed progress rate in completions per day.
	RatePerDay float64 `json:"rate_per_day"`
}

// ClampPercent clamps p to the [0,100] range.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Normalize enforces the result invariants in place and returns the result
// for chaining: percentage clamped to [0,100] and Remaining recomputed as
// max(0, Total-Completed).
func (r *ProgressResult) Normalize() *ProgressResult {
	r.Percentage = ClampPercent(r.Percentage)
	r.Remaining = r.Total - r.Completed
	if r.Remaining < 0 {
		r.Remaining = 0
	}
	return r
}

// DegradedResult builds the zero-progress result returned in place of an
// error, so presentation layers always have a renderable value.
func DegradedResult(q *Quest, msg string, now time.Time) *ProgressResult {
	r := &ProgressResult{
		QuestID:     q.ID,
		Kind:        q.Kind,
		Status:      constants.ProgressNotStarted,
		LastUpdated: now,
		Error:       msg,
	}
	return r.Normalize()
}
