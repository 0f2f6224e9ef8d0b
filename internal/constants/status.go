package constants

import "time"

// GoalStatus represents the lifecycle state of a goal.
// Status values use snake_case for JSON serialization compatibility.
type GoalStatus string

// Goal status constants define the valid states a goal can be in.
// Goals are owned and mutated by the external goal service; the engine
// only reads snapshots, so no transition validation happens here.
const (
	// GoalStatusActive indicates the goal is being worked on.
	GoalStatusActive GoalStatus = "active"

	// GoalStatusPaused indicates the goal is temporarily on hold.
	GoalStatusPaused GoalStatus = "paused"

	// GoalStatusCompleted indicates the goal has been achieved.
	GoalStatusCompleted GoalStatus = "completed"

	// GoalStatusArchived indicates the goal was retired without completion.
	GoalStatusArchived GoalStatus = "archived"
)

// IsCompleted reports whether the goal status is the completion terminal state.
func (s GoalStatus) IsCompleted() bool {
	return s == GoalStatusCompleted
}

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Task status constants define the valid states a task can be in.
const (
	// TaskStatusPending indicates the task has not been started.
	TaskStatusPending TaskStatus = "pending"

	// TaskStatusInProgress indicates the task is being worked on.
	TaskStatusInProgress TaskStatus = "in_progress"

	// TaskStatusCompleted indicates the task is finished.
	TaskStatusCompleted TaskStatus = "completed"

	// TaskStatusDone is a legacy alias emitted by older collaborator
	// payloads. It is treated identically to TaskStatusCompleted.
	TaskStatusDone TaskStatus = "done"

	// TaskStatusCancelled indicates the task was dropped without completion.
	TaskStatusCancelled TaskStatus = "cancelled"
)

// IsCompleted reports whether the task status is a completion terminal state.
// Both "completed" and the legacy "done" value qualify.
func (s TaskStatus) IsCompleted() bool {
	return s == TaskStatusCompleted || s == TaskStatusDone
}

// QuestStatus represents the lifecycle state of a quest.
type QuestStatus string

// Quest status constants define the valid states a quest can be in.
// The lifecycle status is authoritative over computed evidence: a quest
// marked completed always reports 100% progress regardless of what the
// underlying records say.
const (
	// QuestStatusDraft indicates the quest has been created but not started.
	QuestStatusDraft QuestStatus = "draft"

	// QuestStatusActive indicates the quest is running.
	QuestStatusActive QuestStatus = "active"

	// QuestStatusCompleted indicates the quest reached its target.
	QuestStatusCompleted QuestStatus = "completed"

	// QuestStatusCancelled indicates the quest was abandoned by the user.
	QuestStatusCancelled QuestStatus = "cancelled"

	// QuestStatusFailed indicates the quest window closed before the
	// target was reached.
	QuestStatusFailed QuestStatus = "failed"
)

// IsCompleted reports whether the quest status is the completion terminal state.
func (s QuestStatus) IsCompleted() bool {
	return s == QuestStatusCompleted
}

// IsFinished reports whether the quest reached any terminal state
// (completed, failed, or cancelled). Finished quests form the
// denominator of the success-rate statistic.
func (s QuestStatus) IsFinished() bool {
	return s == QuestStatusCompleted || s == QuestStatusFailed || s == QuestStatusCancelled
}

// QuestKind selects the progress model for a quest.
type QuestKind string

// Quest kind constants. The two kinds are mutually exclusive and share
// no fields beyond identity, status, category, and reward.
const (
	// QuestKindLinked measures progress by completion of an explicitly
	// enumerated subset of tasks belonging to enumerated goals.
	QuestKindLinked QuestKind = "linked"

	// QuestKindQuantitative measures progress by counting completions
	// inside a fixed time window, up to a numeric target.
	QuestKindQuantitative QuestKind = "quantitative"
)

// Valid reports whether the kind is one of the two recognized values.
func (k QuestKind) Valid() bool {
	return k == QuestKindLinked || k == QuestKindQuantitative
}

// CountScope selects which entity type a quantitative quest counts.
type CountScope string

// Count scope constants.
const (
	// CountScopeTasks counts task completions inside the quest window.
	CountScopeTasks CountScope = "completed_tasks"

	// CountScopeGoals counts goal completions inside the quest window.
	CountScopeGoals CountScope = "completed_goals"
)

// Valid reports whether the scope is one of the two recognized values.
func (c CountScope) Valid() bool {
	return c == CountScopeTasks || c == CountScopeGoals
}

// ProgressStatus is the normalized status reported in every ProgressResult.
type ProgressStatus string

// Progress status constants.
const (
	// ProgressNotStarted indicates no qualifying completions yet.
	ProgressNotStarted ProgressStatus = "not_started"

	// ProgressInProgress indicates some but not all progress has accrued.
	ProgressInProgress ProgressStatus = "in_progress"

	// ProgressCompleted indicates the quest reached 100%.
	ProgressCompleted ProgressStatus = "completed"
)

// Day is one calendar-agnostic 24h day, used for whole-day arithmetic
// on durations throughout the engine.
const Day = 24 * time.Hour
