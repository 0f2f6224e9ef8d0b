// Package progress implements the questlog progress computation engine:
// time-window progress for goals, the two quest progress models (linked and
// quantitative), and the dispatcher that normalizes both to one result shape.
//
// Every computation works on a fresh snapshot of records and returns a
// self-contained result; no state is held between invocations, so
// simultaneous computations (e.g. rendering many quest cards) need no
// locking discipline.
package progress

import (
	"time"

	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/domain"
)

// TimeWindowResult describes where a goal sits inside its deadline window.
// Exactly one of IsOverdue, IsUrgent, IsOnTrack is true.
type TimeWindowResult struct {
	// Percentage is the linear elapsed-time fraction in [0,100].
	// Overdue goals always report 100 regardless of the raw value.
	Percentage float64 `json:"percentage"`

	// IsOverdue is true when now is past the deadline.
	IsOverdue bool `json:"is_overdue"`

	// IsUrgent is true when the deadline is within the urgency window.
	IsUrgent bool `json:"is_urgent"`

	// IsOnTrack is true when the goal is neither overdue nor urgent.
	IsOnTrack bool `json:"is_on_track"`

	// DaysRemaining is the whole days from now to the deadline (0 without one).
	DaysRemaining int `json:"days_remaining"`

	// DaysElapsed is the whole days from creation to now.
	DaysElapsed int `json:"days_elapsed"`

	// TotalDays is the whole days from creation to the deadline (0 without one).
	TotalDays int `json:"total_days"`
}

// TimeWindow converts a goal's creation/deadline timestamps and the current
// time into a linear elapsed-time percentage and an urgency classification,
// using the default urgency window. Pure arithmetic; no failure modes.
func TimeWindow(g *domain.Goal, now time.Time) TimeWindowResult {
	return TimeWindowIn(g, now, constants.DefaultUrgentWindowDays)
}

// TimeWindowIn is TimeWindow with an explicit urgency window in days.
//
// Goals without a deadline are always on track: percentage 0, remaining and
// total days 0, elapsed days still measured from creation. With a deadline,
// the raw percentage is elapsed/total clamped to [0,100]; being past the
// deadline forces 100.
func TimeWindowIn(g *domain.Goal, now time.Time, urgentDays int) TimeWindowResult {
	elapsed := wholeDays(now.Sub(g.CreatedAt))

	if g.Deadline == nil {
		return TimeWindowResult{
			IsOnTrack:   true,
			DaysElapsed: elapsed,
		}
	}

	deadline := *g.Deadline
	total := wholeDays(deadline.Sub(g.CreatedAt))
	remaining := wholeDays(deadline.Sub(now))

	var pct float64
	if total > 0 {
		pct = domain.ClampPercent(float64(elapsed) / float64(total) * 100)
	}

	res := TimeWindowResult{
		Percentage:    pct,
		DaysRemaining: remaining,
		DaysElapsed:   elapsed,
		TotalDays:     total,
	}

	switch {
	case now.After(deadline):
		res.IsOverdue = true
		res.Percentage = 100
	case remaining > 0 && remaining <= urgentDays:
		res.IsUrgent = true
	default:
		res.IsOnTrack = true
	}
	return res
}

// GoalOverview buckets a goal collection by its time-window classification.
type GoalOverview struct {
	// Overdue holds goals whose deadline has passed.
	Overdue []domain.Goal `json:"overdue"`

	// Urgent holds goals due within the urgency window.
	Urgent []domain.Goal `json:"urgent"`

	// OnTrack holds the rest.
	OnTrack []domain.Goal `json:"on_track"`
}

// ClassifyGoals rolls TimeWindow over a goal list into overdue/urgent/on-track
// buckets using the default urgency window.
func ClassifyGoals(goals []domain.Goal, now time.Time) GoalOverview {
	return ClassifyGoalsIn(goals, now, constants.DefaultUrgentWindowDays)
}

// ClassifyGoalsIn is ClassifyGoals with an explicit urgency window in days.
// Input order is preserved inside each bucket; goals already in a terminal
// state (completed, archived) are excluded.
func ClassifyGoalsIn(goals []domain.Goal, now time.Time, urgentDays int) GoalOverview {
	var ov GoalOverview
	for _, g := range goals {
		if g.Status != constants.GoalStatusActive && g.Status != constants.GoalStatusPaused {
			continue
		}
		tw := TimeWindowIn(&g, now, urgentDays)
		switch {
		case tw.IsOverdue:
			ov.Overdue = append(ov.Overdue, g)
		case tw.IsUrgent:
			ov.Urgent = append(ov.Urgent, g)
		default:
			ov.OnTrack = append(ov.OnTrack, g)
		}
	}
	return ov
}

// wholeDays truncates a duration to whole 24h days.
func wholeDays(d time.Duration) int {
	return int(d / constants.Day)
}
