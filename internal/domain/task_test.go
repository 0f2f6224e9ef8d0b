package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/questlabs/questlog/internal/constants"
)

func TestTask_CompletionTime(t *testing.T) {
	updated := instant(2024, 1, 12)
	explicit := instant(2024, 1, 11)

	t.Run("explicit timestamp wins", func(t *testing.T) {
		task := Task{Status: constants.TaskStatusCompleted, CompletedAt: &explicit, UpdatedAt: updated}
		at, ok := task.CompletionTime()
		assert.True(t, ok)
		assert.Equal(t, explicit, at)
	})

	t.Run("update timestamp stands in", func(t *testing.T) {
		task := Task{Status: constants.TaskStatusCompleted, UpdatedAt: updated}
		at, ok := task.CompletionTime()
		assert.True(t, ok)
		assert.Equal(t, updated, at)
	})

	t.Run("legacy done counts as completed", func(t *testing.T) {
		task := Task{Status: constants.TaskStatusDone, UpdatedAt: updated}
		_, ok := task.CompletionTime()
		assert.True(t, ok)
	})

	t.Run("pending task has no completion", func(t *testing.T) {
		task := Task{Status: constants.TaskStatusPending, CompletedAt: &explicit, UpdatedAt: updated}
		_, ok := task.CompletionTime()
		assert.False(t, ok, "a stale completion timestamp on a reopened task is ignored")
	})

	t.Run("cancelled task has no completion", func(t *testing.T) {
		task := Task{Status: constants.TaskStatusCancelled, UpdatedAt: updated}
		_, ok := task.CompletionTime()
		assert.False(t, ok)
	})
}

func TestGoal_CompletionTime(t *testing.T) {
	updated := instant(2024, 1, 12)

	t.Run("completed goal reports its update time", func(t *testing.T) {
		g := Goal{Status: constants.GoalStatusCompleted, UpdatedAt: updated}
		at, ok := g.CompletionTime()
		assert.True(t, ok)
		assert.Equal(t, updated, at)
	})

	t.Run("active goal has no completion", func(t *testing.T) {
		g := Goal{Status: constants.GoalStatusActive, UpdatedAt: updated}
		_, ok := g.CompletionTime()
		assert.False(t, ok)
	})

	t.Run("archived goal has no completion", func(t *testing.T) {
		g := Goal{Status: constants.GoalStatusArchived, UpdatedAt: updated}
		_, ok := g.CompletionTime()
		assert.False(t, ok)
	})
}
