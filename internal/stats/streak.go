package stats

import (
	"time"

	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/domain"
)

// Streaks computes the current and longest runs of consecutive calendar
// days (UTC) with at least one quest completion. A quest contributes the
// day of its last update when its status is completed.
//
// The current streak survives a day without completions only while that
// day is still today: a run ending yesterday still counts as current, a
// run ending earlier does not.
func Streaks(quests []domain.Quest, now time.Time) (current, longest int) {
	days := make(map[time.Time]bool)
	for i := range quests {
		if quests[i].Status != constants.QuestStatusCompleted {
			continue
		}
		days[dayOf(quests[i].UpdatedAt)] = true
	}
	if len(days) == 0 {
		return 0, 0
	}

	today := dayOf(now)
	yesterday := today.Add(-constants.Day)

	// Current: walk backward from today (or yesterday when today has no
	// completion yet) while each day has a completion.
	anchor := today
	if !days[anchor] {
		anchor = yesterday
	}
	for d := anchor; days[d]; d = d.Add(-constants.Day) {
		current++
	}

	// Longest: for each run start (a day whose predecessor is empty),
	// walk forward to the run's end.
	for d := range days {
		if days[d.Add(-constants.Day)] {
			continue
		}
		run := 0
		for e := d; days[e]; e = e.Add(constants.Day) {
			run++
		}
		if run > longest {
			longest = run
		}
	}
	return current, longest
}

// dayOf truncates a timestamp to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
