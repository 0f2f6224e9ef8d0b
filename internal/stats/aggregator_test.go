package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/questlabs/questlog/internal/clock"
	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/domain"
)

func ts(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func quest(id string, status domain.QuestStatus, created, updated time.Time) domain.Quest {
	start := created
	return domain.Quest{
		ID:        id,
		Title:     id,
		Kind:      constants.QuestKindLinked,
		Status:    status,
		StartAt:   &start,
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

func completedQuest(id, category string, xp int, created, updated time.Time) domain.Quest {
	q := quest(id, domain.QuestStatusCompleted, created, updated)
	q.Category = category
	q.RewardXP = xp
	return q
}

func TestAggregate_EmptyCollection(t *testing.T) {
	agg := New(Options{Clock: clock.Fixed(ts(2024, 3, 1))})

	summary := agg.Aggregate(nil)

	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.SuccessRate, "zero, never NaN")
	assert.Zero(t, summary.AvgCompletionDays)
	assert.Equal(t, NoCategory, summary.MostProductiveCategory)
	assert.Zero(t, summary.CurrentStreak)
	assert.Zero(t, summary.LongestStreak)
	assert.Equal(t, constants.DefaultStatsWindowDays, summary.WindowDays)
	assert.Equal(t, constants.DefaultRecentWindowDays, summary.RecentWindowDays)
}

func TestAggregate_StatusPartitionAndSuccessRate(t *testing.T) {
	now := ts(2024, 3, 1)
	agg := New(Options{Clock: clock.Fixed(now)})

	quests := []domain.Quest{
		completedQuest("q1", "health", 50, ts(2024, 2, 10), ts(2024, 2, 12)),
		completedQuest("q2", "health", 30, ts(2024, 2, 15), ts(2024, 2, 20)),
		quest("q3", domain.QuestStatusFailed, ts(2024, 2, 5), ts(2024, 2, 25)),
		quest("q4", domain.QuestStatusCancelled, ts(2024, 2, 5), ts(2024, 2, 6)),
		quest("q5", domain.QuestStatusActive, ts(2024, 2, 20), ts(2024, 2, 20)),
		quest("q6", domain.QuestStatusDraft, ts(2024, 2, 28), ts(2024, 2, 28)),
	}

	summary := agg.Aggregate(quests)

	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Cancelled)
	assert.Equal(t, 1, summary.Active)
	assert.Equal(t, 1, summary.Draft)
	assert.Equal(t, 80, summary.TotalXP)
	assert.InDelta(t, 50.0, summary.SuccessRate, 0.01, "2 completed of 4 finished")
}

func TestAggregate_WindowMembershipByCreation(t *testing.T) {
	now := ts(2024, 3, 1)
	agg := New(Options{WindowDays: 30, RecentWindowDays: 7, Clock: clock.Fixed(now)})

	quests := []domain.Quest{
		// Created before the 30-day cutoff: excluded from everything.
		completedQuest("old", "health", 100, ts(2024, 1, 1), ts(2024, 2, 28)),
		// Inside the 30-day window but outside the recent 7 days.
		completedQuest("mid", "health", 40, ts(2024, 2, 10), ts(2024, 2, 12)),
		// Inside both windows.
		completedQuest("new", "health", 10, ts(2024, 2, 27), ts(2024, 2, 28)),
	}

	summary := agg.Aggregate(quests)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 50, summary.TotalXP, "the old quest's XP is excluded")
	assert.Equal(t, 1, summary.RecentActivity)
}

func TestAggregate_AvgCompletionDays(t *testing.T) {
	now := ts(2024, 3, 1)
	agg := New(Options{Clock: clock.Fixed(now)})

	quests := []domain.Quest{
		completedQuest("q1", "", 0, ts(2024, 2, 10), ts(2024, 2, 12)), // 2 days
		completedQuest("q2", "", 0, ts(2024, 2, 10), ts(2024, 2, 16)), // 6 days
	}

	summary := agg.Aggregate(quests)

	assert.InDelta(t, 4.0, summary.AvgCompletionDays, 0.01)
}

func TestAggregate_MostProductiveCategory(t *testing.T) {
	now := ts(2024, 3, 1)

	t.Run("clear winner", func(t *testing.T) {
		agg := New(Options{Clock: clock.Fixed(now)})
		quests := []domain.Quest{
			completedQuest("q1", "health", 0, ts(2024, 2, 10), ts(2024, 2, 11)),
			completedQuest("q2", "work", 0, ts(2024, 2, 12), ts(2024, 2, 13)),
			completedQuest("q3", "work", 0, ts(2024, 2, 14), ts(2024, 2, 15)),
		}
		assert.Equal(t, "work", agg.Aggregate(quests).MostProductiveCategory)
	})

	t.Run("tie breaks toward first seen", func(t *testing.T) {
		agg := New(Options{Clock: clock.Fixed(now)})
		quests := []domain.Quest{
			completedQuest("q1", "health", 0, ts(2024, 2, 10), ts(2024, 2, 11)),
			completedQuest("q2", "work", 0, ts(2024, 2, 12), ts(2024, 2, 13)),
			completedQuest("q3", "work", 0, ts(2024, 2, 14), ts(2024, 2, 15)),
			completedQuest("q4", "health", 0, ts(2024, 2, 16), ts(2024, 2, 17)),
		}
		assert.Equal(t, "health", agg.Aggregate(quests).MostProductiveCategory)
	})

	t.Run("empty category becomes Uncategorized", func(t *testing.T) {
		agg := New(Options{Clock: clock.Fixed(now)})
		quests := []domain.Quest{
			completedQuest("q1", "", 0, ts(2024, 2, 10), ts(2024, 2, 11)),
		}
		assert.Equal(t, "Uncategorized", agg.Aggregate(quests).MostProductiveCategory)
	})

	t.Run("nothing completed reports None", func(t *testing.T) {
		agg := New(Options{Clock: clock.Fixed(now)})
		quests := []domain.Quest{
			quest("q1", domain.QuestStatusActive, ts(2024, 2, 10), ts(2024, 2, 10)),
		}
		assert.Equal(t, NoCategory, agg.Aggregate(quests).MostProductiveCategory)
	})
}
