// Package stats rolls a user's quest collection up into trailing-window
// statistics: counts by lifecycle status, XP totals, success rate, average
// completion time, most-productive category, recent activity, and
// completion streaks.
//
// The aggregator operates entirely on an already-materialized in-memory
// collection. There are no fetches, so there is no partial-failure path.
package stats

import (
	"time"

	"github.com/questlabs/questlog/internal/clock"
	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/domain"
)

// NoCategory is reported as the most productive category when no quest
// completed inside the window.
const NoCategory = "None"

// Summary is the rollup computed over one trailing window.
type Summary struct {
	// WindowDays is the trailing window length this summary covers.
	WindowDays int `json:"window_days"`

	// Total is the number of quests created inside the window.
	Total int `json:"total"`

	// Completed, Failed, Cancelled, Active, and Draft partition Total
	// by lifecycle status.
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
	Active    int `json:"active"`
	Draft     int `json:"draft"`

	// TotalXP is the reward XP summed over completed quests in the window.
	TotalXP int `json:"total_xp"`

	// SuccessRate is completed/(completed+failed+cancelled) as a percentage.
	// Zero (never NaN) when no finished quests exist in the window.
	SuccessRate float64 `json:"success_rate"`

	// AvgCompletionDays is the mean days from start to last update over
	// completed quests with a known start. Zero when none qualify.
	AvgCompletionDays float64 `json:"avg_completion_days"`

	// MostProductiveCategory is the category with the most completed
	// quests in the window. Ties break toward the category seen first in
	// the order quests were iterated; NoCategory when nothing completed.
	MostProductiveCategory string `json:"most_productive_category"`

	// RecentWindowDays is the trailing window RecentActivity covers.
	RecentWindowDays int `json:"recent_window_days"`

	// RecentActivity is the number of quests created inside the recent
	// (shorter) trailing window, regardless of status.
	RecentActivity int `json:"recent_activity"`

	// CurrentStreak is the running count of consecutive calendar days,
	// ending today or yesterday, with at least one quest completion.
	CurrentStreak int `json:"current_streak"`

	// LongestStreak is the longest such run anywhere in the collection.
	LongestStreak int `json:"longest_streak"`
}

// Options holds the aggregator knobs. The zero value is usable; unset
// fields fall back to defaults.
type Options struct {
	// WindowDays is the trailing statistics window.
	// Defaults to constants.DefaultStatsWindowDays.
	WindowDays int

	// RecentWindowDays is the trailing recent-activity window.
	// Defaults to constants.DefaultRecentWindowDays.
	RecentWindowDays int

	// Clock supplies the current time (defaults to the system clock).
	Clock clock.Clock
}

// Aggregator computes quest statistics over fixed trailing windows.
type Aggregator struct {
	opts Options
}

// New creates an Aggregator.
func New(opts Options) *Aggregator {
	if opts.WindowDays <= 0 {
		opts.WindowDays = constants.DefaultStatsWindowDays
	}
	if opts.RecentWindowDays <= 0 {
		opts.RecentWindowDays = constants.DefaultRecentWindowDays
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	return &Aggregator{opts: opts}
}

// Aggregate computes the Summary for a quest collection. Window membership
// goes by creation timestamp; streaks are computed over the whole
// collection, not just the window.
func (a *Aggregator) Aggregate(quests []domain.Quest) Summary {
	now := a.opts.Clock.Now()
	cutoff := now.Add(-time.Duration(a.opts.WindowDays) * constants.Day)
	recentCutoff := now.Add(-time.Duration(a.opts.RecentWindowDays) * constants.Day)

	summary := Summary{
		WindowDays:             a.opts.WindowDays,
		RecentWindowDays:       a.opts.RecentWindowDays,
		MostProductiveCategory: NoCategory,
	}

	var completionDaysSum float64
	var completionDaysN int
	categories := newCategoryTally()

	for i := range quests {
		q := &quests[i]
		if q.CreatedAt.After(recentCutoff) && !q.CreatedAt.After(now) {
			summary.RecentActivity++
		}
		if !q.CreatedAt.After(cutoff) || q.CreatedAt.After(now) {
			continue
		}

		summary.Total++
		switch q.Status {
		case constants.QuestStatusCompleted:
			summary.Completed++
			summary.TotalXP += q.RewardXP
			categories.add(q.Category)
			if days, ok := completionDays(q); ok {
				completionDaysSum += days
				completionDaysN++
			}
		case constants.QuestStatusFailed:
			summary.Failed++
		case constants.QuestStatusCancelled:
			summary.Cancelled++
		case constants.QuestStatusActive:
			summary.Active++
		case constants.QuestStatusDraft:
			summary.Draft++
		}
	}

	finished := summary.Completed + summary.Failed + summary.Cancelled
	if finished > 0 {
		summary.SuccessRate = float64(summary.Completed) / float64(finished) * 100
	}
	if completionDaysN > 0 {
		summary.AvgCompletionDays = completionDaysSum / float64(completionDaysN)
	}
	if best, ok := categories.best(); ok {
		summary.MostProductiveCategory = best
	}

	summary.CurrentStreak, summary.LongestStreak = Streaks(quests, now)
	return summary
}

// completionDays measures a completed quest's duration in days from its
// known start to its last update. Quests whose start never resolved are
// excluded from the average.
func completionDays(q *domain.Quest) (float64, bool) {
	start, ok := q.EffectiveStart()
	if !ok {
		return 0, false
	}
	days := q.UpdatedAt.Sub(start).Hours() / 24
	if days < 0 {
		return 0, false
	}
	return days, true
}

// categoryTally counts completed quests per category while remembering the
// order categories were first seen, making the tie break explicit: the
// first category reaching the max count wins.
type categoryTally struct {
	counts map[string]int
	order  []string
}

func newCategoryTally() *categoryTally {
	return &categoryTally{counts: make(map[string]int)}
}

func (t *categoryTally) add(category string) {
	if category == "" {
		category = "Uncategorized"
	}
	if _, seen := t.counts[category]; !seen {
		t.order = append(t.order, category)
	}
	t.counts[category]++
}

func (t *categoryTally) best() (string, bool) {
	best, max := "", 0
	for _, cat := range t.order {
		if t.counts[cat] > max {
			best, max = cat, t.counts[cat]
		}
	}
	return best, best != ""
}
