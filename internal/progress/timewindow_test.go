package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/questlabs/questlog/internal/domain"
)

func ts(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func tsp(year int, month time.Month, day int) *time.Time {
	t := ts(year, month, day)
	return &t
}

func TestTimeWindow_NoDeadline(t *testing.T) {
	g := &domain.Goal{
		ID:        "goal-1",
		Status:    domain.GoalStatusActive,
		CreatedAt: ts(2024, 1, 1),
	}

	res := TimeWindow(g, ts(2024, 1, 11))

	assert.Zero(t, res.Percentage, "goals without a deadline report 0%")
	assert.True(t, res.IsOnTrack)
	assert.False(t, res.IsOverdue)
	assert.False(t, res.IsUrgent)
	assert.Zero(t, res.DaysRemaining)
	assert.Zero(t, res.TotalDays)
	assert.Equal(t, 10, res.DaysElapsed)
}

func TestTimeWindow_MidWindowScenario(t *testing.T) {
	// Goal created 2024-01-01, deadline 2024-02-01 (31-day span),
	// evaluated on 2024-01-16.
	g := &domain.Goal{
		ID:        "goal-1",
		Status:    domain.GoalStatusActive,
		CreatedAt: ts(2024, 1, 1),
		Deadline:  tsp(2024, 2, 1),
	}

	res := TimeWindow(g, ts(2024, 1, 16))

	assert.Equal(t, 15, res.DaysElapsed)
	assert.Equal(t, 31, res.TotalDays)
	assert.Equal(t, 16, res.DaysRemaining)
	assert.InDelta(t, 48.4, res.Percentage, 0.5)
	assert.True(t, res.IsOnTrack)
	assert.False(t, res.IsUrgent)
	assert.False(t, res.IsOverdue)
}

func TestTimeWindow_Overdue(t *testing.T) {
	g := &domain.Goal{
		ID:        "goal-1",
		Status:    domain.GoalStatusActive,
		CreatedAt: ts(2024, 1, 1),
		Deadline:  tsp(2024, 1, 10),
	}

	res := TimeWindow(g, ts(2024, 1, 12))

	assert.True(t, res.IsOverdue)
	assert.False(t, res.IsUrgent)
	assert.False(t, res.IsOnTrack)
	assert.Equal(t, float64(100), res.Percentage, "overdue forces 100 regardless of raw value")
}

func TestTimeWindow_OverdueForcesFullPercentageEvenWhenRawIsLow(t *testing.T) {
	// A goal updated to a deadline in the past but barely elapsed: the raw
	// fraction is small, overdue still wins.
	g := &domain.Goal{
		ID:        "goal-1",
		Status:    domain.GoalStatusActive,
		CreatedAt: ts(2024, 1, 1),
		Deadline:  tsp(2024, 3, 1),
	}

	res := TimeWindow(g, ts(2024, 3, 2))

	assert.True(t, res.IsOverdue)
	assert.Equal(t, float64(100), res.Percentage)
}

func TestTimeWindow_Urgent(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		urgent    bool
	}{
		{"seven days out", 7, true},
		{"one day out", 1, true},
		{"eight days out", 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := ts(2024, 6, 1)
			deadline := now.Add(time.Duration(tt.remaining) * 24 * time.Hour)
			g := &domain.Goal{
				ID:        "goal-1",
				Status:    domain.GoalStatusActive,
				CreatedAt: ts(2024, 1, 1),
				Deadline:  &deadline,
			}

			res := TimeWindow(g, now)

			assert.Equal(t, tt.urgent, res.IsUrgent)
			assert.False(t, res.IsOverdue)
			assert.Equal(t, !tt.urgent, res.IsOnTrack)
		})
	}
}

func TestTimeWindow_ClassificationsMutuallyExclusive(t *testing.T) {
	deadlines := []*time.Time{nil, tsp(2024, 1, 5), tsp(2024, 1, 20), tsp(2024, 6, 1)}
	for _, dl := range deadlines {
		g := &domain.Goal{CreatedAt: ts(2024, 1, 1), Deadline: dl}
		res := TimeWindow(g, ts(2024, 1, 15))

		count := 0
		for _, b := range []bool{res.IsOverdue, res.IsUrgent, res.IsOnTrack} {
			if b {
				count++
			}
		}
		assert.Equal(t, 1, count, "exactly one classification must hold")
	}
}

func TestClassifyGoals(t *testing.T) {
	now := ts(2024, 6, 15)
	goals := []domain.Goal{
		{ID: "overdue", Status: domain.GoalStatusActive, CreatedAt: ts(2024, 1, 1), Deadline: tsp(2024, 6, 1)},
		{ID: "urgent", Status: domain.GoalStatusActive, CreatedAt: ts(2024, 1, 1), Deadline: tsp(2024, 6, 18)},
		{ID: "open", Status: domain.GoalStatusActive, CreatedAt: ts(2024, 1, 1)},
		{ID: "done", Status: domain.GoalStatusCompleted, CreatedAt: ts(2024, 1, 1), Deadline: tsp(2024, 6, 1)},
		{ID: "archived", Status: domain.GoalStatusArchived, CreatedAt: ts(2024, 1, 1)},
	}

	ov := ClassifyGoals(goals, now)

	assert.Len(t, ov.Overdue, 1)
	assert.Equal(t, "overdue", ov.Overdue[0].ID)
	assert.Len(t, ov.Urgent, 1)
	assert.Equal(t, "urgent", ov.Urgent[0].ID)
	assert.Len(t, ov.OnTrack, 1)
	assert.Equal(t, "open", ov.OnTrack[0].ID, "terminal goals are excluded")
}
