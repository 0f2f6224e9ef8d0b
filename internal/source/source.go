// Package source defines the collaborator contract through which the
// progress engine reads goal and task records. The concrete transport
// (GraphQL, REST, a local file) is owned by the host application; the
// engine only sees these two capabilities, each of which may fail
// independently and return a collection.
package source

import (
	"context"
	"time"

	"github.com/questlabs/questlog/internal/domain"
	"github.com/questlabs/questlog/internal/errors"
)

// Source is the abstract record-retrieval capability consumed by the
// progress calculators. Implementations must be safe for concurrent use:
// per-goal task fetches may be issued in parallel.
type Source interface {
	// UserGoals fetches all goals for the current user.
	// May fail as a whole; callers treat the computation as unavailable
	// rather than silently empty.
	UserGoals(ctx context.Context) ([]domain.Goal, error)

	// GoalTasks fetches the task collection for one goal.
	// May fail per call; the calculators skip failed goals and continue.
	GoalTasks(ctx context.Context, goalID string) ([]domain.Task, error)
}

// timeoutSource wraps a Source with a per-fetch deadline.
type timeoutSource struct {
	inner   Source
	timeout time.Duration
}

// WithTimeout wraps src so every fetch carries its own deadline. A fetch
// that exceeds the deadline surfaces as an ordinary fetch error wrapping
// errors.ErrFetchTimeout, preserving the engine's skip-and-continue
// semantics for failures.
func WithTimeout(src Source, timeout time.Duration) Source {
	if timeout <= 0 {
		return src
	}
	return &timeoutSource{inner: src, timeout: timeout}
}

// UserGoals fetches the goal list under the configured deadline.
func (s *timeoutSource) UserGoals(ctx context.Context) ([]domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	goals, err := s.inner.UserGoals(ctx)
	return goals, normalizeTimeout(ctx, err)
}

// GoalTasks fetches one goal's tasks under the configured deadline.
func (s *timeoutSource) GoalTasks(ctx context.Context, goalID string) ([]domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tasks, err := s.inner.GoalTasks(ctx, goalID)
	return tasks, normalizeTimeout(ctx, err)
}

// normalizeTimeout maps a deadline-exceeded failure onto the engine's
// sentinel so callers can categorize it, while keeping the original chain.
func normalizeTimeout(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() == context.DeadlineExceeded {
		return errors.Wrap(errors.ErrFetchTimeout, err.Error())
	}
	return err
}
