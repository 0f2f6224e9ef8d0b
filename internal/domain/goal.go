// Package domain provides shared domain types for the questlog progress
// engine. These types are plain snapshots of records owned by external
// services; the engine only reads them and never mutates them.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case per architecture requirements.
package domain

import (
	"time"

	"github.com/questlabs/questlog/internal/constants"
)

// Goal represents a user goal as supplied by the external goal service.
//
// Example JSON representation:
//
//	{
//	    "id": "goal-20260115-083000",
//	    "title": "Ship the Q1 report",
//	    "status": "active",
//	    "deadline": "2026-02-01T00:00:00Z",
//	    "created_at": "2026-01-01T08:30:00Z",
//	    "updated_at": "2026-01-15T08:30:00Z",
//	    "tags": ["work", "writing"]
//	}
type Goal struct {
	// ID is the unique identifier for the goal.
	ID string `json:"id" yaml:"id"`

	// Title is a human-readable summary of the goal.
	Title string `json:"title" yaml:"title"`

	// Status represents the current state in the goal lifecycle.
	// Uses constants.GoalStatus values (active, paused, completed, archived).
	Status constants.GoalStatus `json:"status" yaml:"status"`

	// Deadline is the target calendar date for the goal (nil if open-ended).
	Deadline *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`

	// CreatedAt is when the goal was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when the goal was last modified. For completed goals
	// this doubles as the completion instant.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`

	// Tags are free-form labels attached by the user.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// CompletionTime returns the instant the goal completed and true when the
// goal is in its completion terminal state. The external service records no
// explicit completion timestamp for goals, so the last update stands in.
func (g *Goal) CompletionTime() (time.Time, bool) {
	if !g.Status.IsCompleted() {
		return time.Time{}, false
	}
	return g.UpdatedAt, true
}
