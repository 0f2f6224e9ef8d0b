package domain

import (
	"time"

	"github.com/questlabs/questlog/internal/constants"
)

// Task represents a single task belonging to a goal, as supplied by the
// external task service.
//
// Example JSON representation:
//
//	{
//	    "id": "task-20260110-120000",
//	    "goal_id": "goal-20260115-083000",
//	    "title": "Draft the outline",
//	    "status": "completed",
//	    "due_at": "2026-01-20T00:00:00Z",
//	    "created_at": "2026-01-10T12:00:00Z",
//	    "updated_at": "2026-01-12T09:00:00Z",
//	    "completed_at": "2026-01-12T09:00:00Z"
//	}
type Task struct {
	// ID is the unique identifier for the task.
	ID string `json:"id" yaml:"id"`

	// GoalID links this task to its owning goal.
	GoalID string `json:"goal_id" yaml:"goal_id"`

	// Title is a human-readable summary of the task.
	Title string `json:"title" yaml:"title"`

	// Status represents the current state in the task lifecycle.
	// Uses constants.TaskStatus values (pending, in_progress, completed, ...).
	Status constants.TaskStatus `json:"status" yaml:"status"`

	// DueAt is when the task is due (nil if no due date).
	DueAt *time.Time `json:"due_at,omitempty" yaml:"due_at,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`

	// CompletedAt is the explicit completion instant (nil if the service
	// did not record one; see CompletionTime for the fallback rule).
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

// CompletionTime returns the instant the task completed and true when the
// task is in a completion terminal state. The explicit completion timestamp
// wins; when the service omitted it, the last update timestamp stands in.
func (t *Task) CompletionTime() (time.Time, bool) {
	if !t.Status.IsCompleted() {
		return time.Time{}, false
	}
	if t.CompletedAt != nil {
		return *t.CompletedAt, true
	}
	return t.UpdatedAt, true
}
