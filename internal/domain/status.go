// Package domain provides shared domain types for the questlog progress engine.
package domain

import "github.com/questlabs/questlog/internal/constants"

// Re-export status and kind types from the constants package.
// This allows consumers to import domain types and status types together,
// providing a unified API for working with questlog domain objects.
//
// Example usage:
//
//	import "github.com/questlabs/questlog/internal/domain"
//
//	quest := domain.Quest{
//	    Kind:   domain.QuestKindLinked,
//	    Status: domain.QuestStatusActive,
//	}
type (
	// GoalStatus represents the lifecycle state of a goal.
	GoalStatus = constants.GoalStatus

	// TaskStatus represents the lifecycle state of a task.
	TaskStatus = constants.TaskStatus

	// QuestStatus represents the lifecycle state of a quest.
	QuestStatus = constants.QuestStatus

	// QuestKind selects the progress model for a quest.
	QuestKind = constants.QuestKind

	// CountScope selects which entity type a quantitative quest counts.
	CountScope = constants.CountScope

	// ProgressStatus is the normalized status in every ProgressResult.
	ProgressStatus = constants.ProgressStatus
)

// Re-export goal status constants for convenience.
const (
	// GoalStatusActive indicates the goal is being worked on.
	GoalStatusActive = constants.GoalStatusActive

	// GoalStatusPaused indicates the goal is temporarily on hold.
	GoalStatusPaused = constants.GoalStatusPaused

	// GoalStatusCompleted indicates the goal has been achieved.
	GoalStatusCompleted = constants.GoalStatusCompleted

	// GoalStatusArchived indicates the goal was retired without completion.
	GoalStatusArchived = constants.GoalStatusArchived
)

// Re-export task status constants for convenience.
const (
	// TaskStatusPending indicates the task has not been started.
	TaskStatusPending = constants.TaskStatusPending

	// TaskStatusInProgress indicates the task is being worked on.
	TaskStatusInProgress = constants.TaskStatusInProgress

	// TaskStatusCompleted indicates the task is finished.
	TaskStatusCompleted = constants.TaskStatusCompleted

	// TaskStatusDone is a legacy alias treated identically to completed.
	TaskStatusDone = constants.TaskStatusDone

	// TaskStatusCancelled indicates the task was dropped without completion.
	TaskStatusCancelled = constants.TaskStatusCancelled
)

// Re-export quest status, kind, scope, and progress constants for convenience.
const (
	// QuestStatusDraft indicates the quest has been created but not started.
	QuestStatusDraft = constants.QuestStatusDraft

	// QuestStatusActive indicates the quest is running.
	QuestStatusActive = constants.QuestStatusActive

	// QuestStatusCompleted indicates the quest reached its target.
	QuestStatusCompleted = constants.QuestStatusCompleted

	// QuestStatusCancelled indicates the quest was abandoned by the user.
	QuestStatusCancelled = constants.QuestStatusCancelled

	// QuestStatusFailed indicates the window closed before the target.
	QuestStatusFailed = constants.QuestStatusFailed

	// QuestKindLinked measures progress over an enumerated task subset.
	QuestKindLinked = constants.QuestKindLinked

	// QuestKindQuantitative measures progress by windowed counting.
	QuestKindQuantitative = constants.QuestKindQuantitative

	// CountScopeTasks counts task completions.
	CountScopeTasks = constants.CountScopeTasks

	// CountScopeGoals counts goal completions.
	CountScopeGoals = constants.CountScopeGoals

	// ProgressNotStarted indicates no qualifying completions yet.
	ProgressNotStarted = constants.ProgressNotStarted

	// ProgressInProgress indicates partial progress.
	ProgressInProgress = constants.ProgressInProgress

	// ProgressCompleted indicates the quest reached 100%.
	ProgressCompleted = constants.ProgressCompleted
)
