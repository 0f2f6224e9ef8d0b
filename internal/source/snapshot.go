package source

import (
	"context"
	"sync"

	"github.com/questlabs/questlog/internal/domain"
	"github.com/questlabs/questlog/internal/errors"
)

// Snapshot is an in-memory Source serving a fixed set of records. The CLI
// builds one from a snapshot file; tests build one directly and can inject
// per-goal fetch failures to exercise the partial-failure paths.
type Snapshot struct {
	mu     sync.RWMutex
	goals  []domain.Goal
	tasks  map[string][]domain.Task
	quests []domain.Quest

	goalsErr error
	taskErrs map[string]error
}

// NewSnapshot creates a Snapshot over the given records. Tasks are indexed
// by their owning goal ID; the task slice order is preserved per goal.
func NewSnapshot(goals []domain.Goal, tasks []domain.Task, quests []domain.Quest) *Snapshot {
	byGoal := make(map[string][]domain.Task)
	for _, t := range tasks {
		byGoal[t.GoalID] = append(byGoal[t.GoalID], t)
	}
	return &Snapshot{
		goals:    goals,
		tasks:    byGoal,
		quests:   quests,
		taskErrs: make(map[string]error),
	}
}

// UserGoals returns the snapshot's goal list, or the injected failure.
func (s *Snapshot) UserGoals(_ context.Context) ([]domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.goalsErr != nil {
		return nil, s.goalsErr
	}
	out := make([]domain.Goal, len(s.goals))
	copy(out, s.goals)
	return out, nil
}

// GoalTasks returns the tasks for one goal, or the injected failure for
// that goal. An unknown goal ID yields an empty collection, matching how
// the upstream service answers for goals without tasks.
func (s *Snapshot) GoalTasks(_ context.Context, goalID string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.taskErrs[goalID]; err != nil {
		return nil, err
	}
	tasks := s.tasks[goalID]
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out, nil
}

// Quests returns the snapshot's quest collection. Quests are not part of
// the Source contract (calculators receive them directly), but snapshot
// files carry them and the CLI reads them from here.
func (s *Snapshot) Quests() []domain.Quest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Quest, len(s.quests))
	copy(out, s.quests)
	return out
}

// Quest looks up one quest by ID.
func (s *Snapshot) Quest(id string) (domain.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quests {
		if q.ID == id {
			return q, nil
		}
	}
	return domain.Quest{}, errors.Wrapf(errors.ErrQuestNotFound, "quest %q", id)
}

// Goal looks up one goal by ID.
func (s *Snapshot) Goal(id string) (domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.Goal{}, errors.Wrapf(errors.ErrGoalNotFound, "goal %q", id)
}

// FailGoals makes every subsequent UserGoals call return err.
func (s *Snapshot) FailGoals(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goalsErr = err
}

// FailGoalTasks makes every subsequent GoalTasks call for goalID return err.
func (s *Snapshot) FailGoalTasks(goalID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskErrs[goalID] = err
}

// Ensure Snapshot implements Source.
var _ Source = (*Snapshot)(nil)
