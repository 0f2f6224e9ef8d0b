package source

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/questlabs/questlog/internal/domain"
	"github.com/questlabs/questlog/internal/errors"
)

// Document is the on-disk YAML shape of a record snapshot. It mirrors what
// the external services would return for one user at one instant, plus an
// optional as_of timestamp that pins "now" when replaying the snapshot.
//
// Example:
//
//	as_of: 2026-01-16T00:00:00Z
//	goals:
//	  - id: goal-1
//	    title: Ship the Q1 report
//	    status: active
//	    created_at: 2026-01-01T08:30:00Z
//	    updated_at: 2026-01-15T08:30:00Z
//	tasks:
//	  - id: task-1
//	    goal_id: goal-1
//	    status: completed
//	    created_at: 2026-01-10T12:00:00Z
//	    updated_at: 2026-01-12T09:00:00Z
//	quests:
//	  - id: quest-1
//	    kind: linked
//	    status: active
//	    goal_ids: [goal-1]
//	    task_ids: [task-1]
//	    created_at: 2026-01-01T09:00:00Z
//	    updated_at: 2026-01-12T09:00:00Z
type Document struct {
	// AsOf pins the evaluation instant for the snapshot (nil means wall time).
	AsOf *time.Time `yaml:"as_of,omitempty"`

	// Goals are the user's goal records.
	Goals []domain.Goal `yaml:"goals"`

	// Tasks are the task records across all goals.
	Tasks []domain.Task `yaml:"tasks"`

	// Quests are the user's quest records.
	Quests []domain.Quest `yaml:"quests"`
}

// LoadFile reads a snapshot document from a YAML file and builds a Snapshot
// plus the document's pinned evaluation instant (zero when absent).
func LoadFile(path string) (*Snapshot, time.Time, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from an explicit CLI flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, time.Time{}, errors.Wrapf(errors.ErrSnapshotNotFound, "%s", path)
		}
		return nil, time.Time{}, errors.Wrapf(err, "failed to read snapshot %s", path)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, time.Time{}, errors.Wrap(errors.ErrSnapshotInvalid, err.Error())
	}

	var asOf time.Time
	if doc.AsOf != nil {
		asOf = *doc.AsOf
	}
	return NewSnapshot(doc.Goals, doc.Tasks, doc.Quests), asOf, nil
}
