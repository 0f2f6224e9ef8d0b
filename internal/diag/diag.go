// Package diag defines the structured diagnostic events emitted by the
// progress engine. The engine never logs directly; it hands events to a
// Recorder so the host application decides how to surface them. This keeps
// the computation core free of environment-specific logging dependencies.
package diag

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventKind categorizes a diagnostic event.
type EventKind string

// Event kind constants.
const (
	// KindFetchSkipped indicates one goal's tasks could not be fetched and
	// the computation proceeded without them.
	KindFetchSkipped EventKind = "fetch_skipped"

	// KindFetchFailed indicates a primary fetch (the goal list) failed and
	// the computation degraded to a zero-progress result.
	KindFetchFailed EventKind = "fetch_failed"

	// KindEstimatedProgress indicates a percentage was extrapolated from
	// elapsed time because no task records were available.
	KindEstimatedProgress EventKind = "estimated_progress"
)

// Event is a single diagnostic emitted during a progress computation.
type Event struct {
	// ID uniquely identifies the event instance.
	ID string `json:"id"`

	// Kind categorizes the event.
	Kind EventKind `json:"kind"`

	// QuestID is the quest being computed when the event occurred.
	QuestID string `json:"quest_id,omitempty"`

	// GoalID is the goal whose fetch was skipped (empty when not per-goal).
	GoalID string `json:"goal_id,omitempty"`

	// Err is the underlying failure (nil for non-failure events).
	Err error `json:"-"`

	// At is when the event occurred.
	At time.Time `json:"at"`
}

// Recorder receives diagnostic events from the engine.
// Implementations must be safe for concurrent use: per-goal fetches run
// in parallel and record their failures independently.
type Recorder interface {
	// Record handles one diagnostic event.
	Record(ev Event)
}

// NewEvent builds an Event with a fresh ID and the given occurrence time.
func NewEvent(kind EventKind, questID, goalID string, err error, at time.Time) Event {
	return Event{
		ID:      uuid.NewString(),
		Kind:    kind,
		QuestID: questID,
		GoalID:  goalID,
		Err:     err,
		At:      at,
	}
}

// NopRecorder discards all events. Useful as a default so engine code never
// needs a nil check before recording.
type NopRecorder struct{}

// Record discards the event.
func (NopRecorder) Record(Event) {}

// Ensure NopRecorder implements Recorder.
var _ Recorder = NopRecorder{}

// LogRecorder forwards events to a zerolog logger at warn level.
// zerolog loggers are safe for concurrent use, so LogRecorder is too.
type LogRecorder struct {
	logger zerolog.Logger
}

// NewLogRecorder creates a Recorder backed by the given logger.
func NewLogRecorder(logger zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

// Record writes the event as a structured warn-level log line.
func (r *LogRecorder) Record(ev Event) {
	e := r.logger.Warn().
		Str("event_id", ev.ID).
		Str("kind", string(ev.Kind)).
		Time("at", ev.At)
	if ev.QuestID != "" {
		e = e.Str("quest_id", ev.QuestID)
	}
	if ev.GoalID != "" {
		e = e.Str("goal_id", ev.GoalID)
	}
	if ev.Err != nil {
		e = e.Err(ev.Err)
	}
	e.Msg("progress engine diagnostic")
}

// Ensure LogRecorder implements Recorder.
var _ Recorder = (*LogRecorder)(nil)

// CaptureRecorder collects events in memory for inspection. Intended for
// tests and for surfacing diagnostics alongside CLI output.
type CaptureRecorder struct {
	mu     sync.Mutex
	events []Event
}

// NewCaptureRecorder creates an empty CaptureRecorder.
func NewCaptureRecorder() *CaptureRecorder {
	return &CaptureRecorder{}
}

// Record appends the event.
func (c *CaptureRecorder) Record(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

// Events returns a copy of the captured events in arrival order.
func (c *CaptureRecorder) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Ensure CaptureRecorder implements Recorder.
var _ Recorder = (*CaptureRecorder)(nil)
