package source

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/domain"
	"github.com/questlabs/questlog/internal/errors"
)

func sampleRecords() ([]domain.Goal, []domain.Task, []domain.Quest) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	goals := []domain.Goal{
		{ID: "goal-1", Status: constants.GoalStatusActive, CreatedAt: at, UpdatedAt: at},
		{ID: "goal-2", Status: constants.GoalStatusActive, CreatedAt: at, UpdatedAt: at},
	}
	tasks := []domain.Task{
		{ID: "task-1", GoalID: "goal-1", Status: constants.TaskStatusPending, CreatedAt: at, UpdatedAt: at},
		{ID: "task-2", GoalID: "goal-1", Status: constants.TaskStatusCompleted, CreatedAt: at, UpdatedAt: at},
		{ID: "task-3", GoalID: "goal-2", Status: constants.TaskStatusPending, CreatedAt: at, UpdatedAt: at},
	}
	quests := []domain.Quest{
		{ID: "quest-1", Kind: constants.QuestKindLinked, Status: constants.QuestStatusActive, CreatedAt: at, UpdatedAt: at},
	}
	return goals, tasks, quests
}

func TestSnapshot_ServesRecords(t *testing.T) {
	snap := NewSnapshot(sampleRecords())
	ctx := context.Background()

	goals, err := snap.UserGoals(ctx)
	require.NoError(t, err)
	assert.Len(t, goals, 2)

	tasks, err := snap.GoalTasks(ctx, "goal-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "task-1", tasks[0].ID, "per-goal order is preserved")

	tasks, err = snap.GoalTasks(ctx, "goal-without-tasks")
	require.NoError(t, err)
	assert.Empty(t, tasks, "an unknown goal yields an empty collection, not an error")
}

func TestSnapshot_ReturnsCopies(t *testing.T) {
	snap := NewSnapshot(sampleRecords())
	ctx := context.Background()

	goals, err := snap.UserGoals(ctx)
	require.NoError(t, err)
	goals[0].ID = "mutated"

	again, err := snap.UserGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, "goal-1", again[0].ID)
}

func TestSnapshot_InjectedFailures(t *testing.T) {
	snap := NewSnapshot(sampleRecords())
	ctx := context.Background()

	goalsErr := stderrors.New("goals down")
	taskErr := stderrors.New("tasks down")
	snap.FailGoals(goalsErr)
	snap.FailGoalTasks("goal-1", taskErr)

	_, err := snap.UserGoals(ctx)
	assert.ErrorIs(t, err, goalsErr)

	_, err = snap.GoalTasks(ctx, "goal-1")
	assert.ErrorIs(t, err, taskErr)

	// Other goals are unaffected.
	tasks, err := snap.GoalTasks(ctx, "goal-2")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestSnapshot_GoalLookup(t *testing.T) {
	snap := NewSnapshot(sampleRecords())

	g, err := snap.Goal("goal-2")
	require.NoError(t, err)
	assert.Equal(t, "goal-2", g.ID)

	_, err = snap.Goal("missing")
	assert.ErrorIs(t, err, errors.ErrGoalNotFound)
}

func TestSnapshot_QuestLookup(t *testing.T) {
	snap := NewSnapshot(sampleRecords())

	q, err := snap.Quest("quest-1")
	require.NoError(t, err)
	assert.Equal(t, "quest-1", q.ID)

	_, err = snap.Quest("missing")
	assert.ErrorIs(t, err, errors.ErrQuestNotFound)

	assert.Len(t, snap.Quests(), 1)
}
