package domain

import (
	"time"

	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/errors"
)

// Quest represents a quest record. A quest is exactly one of two kinds:
//
//   - linked: progress is measured by completion of an explicitly
//     enumerated subset of tasks (TaskIDs) belonging to enumerated goals
//     (GoalIDs). The quest tracks only tasks in TaskIDs, even when the
//     linked goals contain other tasks.
//   - quantitative: progress is measured by counting completions (tasks or
//     goals, per Scope) that occur inside a fixed time window, up to Target.
//
// The kinds share no fields beyond identity, status, category, and reward;
// kind-specific fields are simply unset for the other kind.
//
// Example JSON representation (quantitative):
//
//	{
//	    "id": "quest-20260101-090000",
//	    "title": "Finish five tasks this week",
//	    "kind": "quantitative",
//	    "status": "active",
//	    "category": "work",
//	    "reward_xp": 50,
//	    "target": 5,
//	    "scope": "completed_tasks",
//	    "period_days": 7,
//	    "created_at": "2026-01-01T09:00:00Z",
//	    "updated_at": "2026-01-03T18:00:00Z"
//	}
type Quest struct {
	// ID is the unique identifier for the quest.
	ID string `json:"id" yaml:"id"`

	// Title is a human-readable summary of the quest.
	Title string `json:"title" yaml:"title"`

	// Kind selects the progress model (linked or quantitative).
	Kind constants.QuestKind `json:"kind" yaml:"kind"`

	// Status represents the current state in the quest lifecycle.
	// Uses constants.QuestStatus values (draft, active, completed, ...).
	// The lifecycle status is authoritative over computed evidence.
	Status constants.QuestStatus `json:"status" yaml:"status"`

	// Category is the user-assigned grouping label (e.g. "health", "work").
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// RewardXP is the experience awarded when the quest completes.
	RewardXP int `json:"reward_xp,omitempty" yaml:"reward_xp,omitempty"`

	// GoalIDs is the ordered set of linked goal identities (linked kind only).
	GoalIDs []string `json:"goal_ids,omitempty" yaml:"goal_ids,omitempty"`

	// TaskIDs is the set of linked task identities (linked kind only).
	// Only tasks in this set count toward progress.
	TaskIDs []string `json:"task_ids,omitempty" yaml:"task_ids,omitempty"`

	// Target is the completion count to reach (quantitative kind only).
	// Must be positive.
	Target int `json:"target,omitempty" yaml:"target,omitempty"`

	// Scope selects which entity type is counted (quantitative kind only).
	Scope constants.CountScope `json:"scope,omitempty" yaml:"scope,omitempty"`

	// PeriodDays is the length of the counting window in days
	// (quantitative kind only). Must be positive.
	PeriodDays int `json:"period_days,omitempty" yaml:"period_days,omitempty"`

	// StartAt is the explicit window start (nil when the start derives
	// from StartedAt or, for active quests, from CreatedAt).
	StartAt *time.Time `json:"start_at,omitempty" yaml:"start_at,omitempty"`

	// StartedAt is when the quest transitioned to active (nil if never).
	StartedAt *time.Time `json:"started_at,omitempty" yaml:"started_at,omitempty"`

	// Deadline is the explicit window end (nil means start + period).
	Deadline *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`

	// CreatedAt is when the quest was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when the quest was last modified. For completed quests
	// this doubles as the completion instant.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// EffectiveStart resolves the instant the quest's window opened.
// Resolution order: explicit StartAt, then StartedAt, then - only while the
// quest is currently active - its creation time. Returns false when none
// resolves, i.e. the quest has not started yet.
func (q *Quest) EffectiveStart() (time.Time, bool) {
	if q.StartAt != nil {
		return *q.StartAt, true
	}
	if q.StartedAt != nil {
		return *q.StartedAt, true
	}
	if q.Status == constants.QuestStatusActive {
		return q.CreatedAt, true
	}
	return time.Time{}, false
}

// WindowEnd resolves the instant the quest's window closes, given its
// resolved start: the explicit deadline when present, else start + period.
func (q *Quest) WindowEnd(start time.Time) time.Time {
	if q.Deadline != nil {
		return *q.Deadline
	}
	return start.Add(time.Duration(q.PeriodDays) * constants.Day)
}

// ValidateQuantitative checks the preconditions for quantitative progress
// computation. Violations indicate malformed input and must not be retried.
func (q *Quest) ValidateQuantitative() error {
	if q.Kind != constants.QuestKindQuantitative {
		return errors.Wrapf(errors.ErrWrongQuestKind, "quest %s has kind %q", q.ID, q.Kind)
	}
	if q.Target <= 0 {
		return errors.Wrapf(errors.ErrInvalidTarget, "quest %s has target %d", q.ID, q.Target)
	}
	if !q.Scope.Valid() {
		return errors.Wrapf(errors.ErrInvalidCountScope, "quest %s has scope %q", q.ID, q.Scope)
	}
	if q.PeriodDays <= 0 {
		return errors.Wrapf(errors.ErrInvalidPeriod, "quest %s has period %d", q.ID, q.PeriodDays)
	}
	return nil
}
