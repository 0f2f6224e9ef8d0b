package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questlabs/questlog/internal/clock"
	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/domain"
	"github.com/questlabs/questlog/internal/errors"
	"github.com/questlabs/questlog/internal/source"
)

func TestEngine_UnknownKindDegrades(t *testing.T) {
	snap := source.NewSnapshot(nil, nil, nil)
	eng := New(snap, Options{Clock: clock.Fixed(ts(2024, 1, 8))})

	q := &domain.Quest{ID: "quest-x", Kind: "mystery", Status: domain.QuestStatusActive}

	res := eng.Compute(context.Background(), q)

	require.NotNil(t, res)
	assert.Zero(t, res.Percentage)
	assert.Equal(t, domain.ProgressNotStarted, res.Status)
	assert.Contains(t, res.Error, errors.ErrUnknownQuestKind.Error(),
		"the degraded message carries the sentinel's taxonomy")
	assert.Contains(t, res.Error, `"mystery"`)
	assert.Equal(t, "quest-x", res.QuestID)
}

func TestEngine_PreconditionFailureDegrades(t *testing.T) {
	snap := source.NewSnapshot(nil, nil, nil)
	eng := New(snap, Options{Clock: clock.Fixed(ts(2024, 1, 8))})

	start := ts(2024, 1, 1)
	q := &domain.Quest{
		ID:         "quest-q",
		Kind:       constants.QuestKindQuantitative,
		Status:     domain.QuestStatusActive,
		Target:     0, // invalid
		Scope:      constants.CountScopeTasks,
		PeriodDays: 7,
		StartAt:    &start,
	}

	res := eng.Compute(context.Background(), q)

	require.NotNil(t, res)
	assert.Zero(t, res.Percentage)
	assert.NotEmpty(t, res.Error)
}

func TestEngine_RoutesByKind(t *testing.T) {
	snap := source.NewSnapshot(
		[]domain.Goal{activeGoal("goal-1")},
		[]domain.Task{
			completedTask("task-1", "goal-1", ts(2024, 1, 2)),
			pendingTask("task-2", "goal-1", ts(2024, 1, 2)),
		},
		nil,
	)
	eng := New(snap, Options{Clock: clock.Fixed(ts(2024, 1, 5))})

	linked := linkedQuest([]string{"goal-1"}, []string{"task-1", "task-2"})
	start := ts(2024, 1, 1)
	quant := quantQuest(4, constants.CountScopeTasks, 7, start)

	results := eng.ComputeAll(context.Background(), []domain.Quest{*linked, *quant})

	require.Len(t, results, 2)
	assert.Equal(t, constants.QuestKindLinked, results[0].Kind)
	assert.Equal(t, float64(50), results[0].Percentage)
	assert.Equal(t, constants.QuestKindQuantitative, results[1].Kind)
	assert.Equal(t, 1, results[1].Completed)
}

func TestEngine_OneDegradedResultDoesNotAffectOthers(t *testing.T) {
	start := ts(2024, 1, 1)
	snap := source.NewSnapshot(
		[]domain.Goal{activeGoal("goal-1")},
		[]domain.Task{completedTask("task-1", "goal-1", ts(2024, 1, 2))},
		nil,
	)
	eng := New(snap, Options{Clock: clock.Fixed(ts(2024, 1, 5))})

	broken := *quantQuest(2, constants.CountScopeTasks, 7, start)
	broken.ID = "quest-broken"
	broken.Scope = "nope"
	healthy := *quantQuest(2, constants.CountScopeTasks, 7, start)
	healthy.ID = "quest-healthy"

	results := eng.ComputeAll(context.Background(), []domain.Quest{broken, healthy})

	require.Len(t, results, 2)
	assert.NotEmpty(t, results[0].Error)
	assert.Empty(t, results[1].Error)
	assert.Equal(t, 1, results[1].Completed)
}
