package progress

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/diag"
	"github.com/questlabs/questlog/internal/domain"
	"github.com/questlabs/questlog/internal/errors"
	"github.com/questlabs/questlog/internal/source"
)

// Quantitative computes progress for quantitative-kind quests: quests that
// count completions (tasks or goals) inside a fixed time window against a
// numeric target.
type Quantitative struct {
	src  source.Source
	opts Options
}

// NewQuantitative creates a quantitative-quest calculator over the given source.
func NewQuantitative(src source.Source, opts Options) *Quantitative {
	return &Quantitative{src: src, opts: opts.withDefaults()}
}

// Compute derives the progress result for one quantitative quest.
//
// Preconditions (positive target, recognized scope, positive period) are
// validated before any fetch and returned as errors; callers must not
// retry them. After that the only error-shaped outcome is the degraded
// zero-progress result carrying an error string when the primary goal list
// cannot be fetched at all.
//
// The qualifying window is half-open on the start side and closed on the
// end side: a completion exactly at the start instant does not count, one
// exactly at the window end does.
func (c *Quantitative) Compute(ctx context.Context, q *domain.Quest) (*domain.ProgressResult, error) {
	if err := q.ValidateQuantitative(); err != nil {
		return nil, err
	}

	now := c.opts.Clock.Now()

	if q.Status.IsCompleted() {
		return completedQuantitativeResult(q, now), nil
	}

	start, started := q.EffectiveStart()
	if !started {
		// Not yet started and not active: nothing to count, no fetch.
		res := &domain.ProgressResult{
			QuestID:     q.ID,
			Kind:        q.Kind,
			Status:      constants.ProgressNotStarted,
			Total:       q.Target,
			LastUpdated: now,
			Quantitative: &domain.QuantitativeBreakdown{
				Target:     q.Target,
				Scope:      q.Scope,
				PeriodDays: q.PeriodDays,
			},
		}
		return res.Normalize(), nil
	}
	end := q.WindowEnd(start)

	goals, err := c.src.UserGoals(ctx)
	if err != nil {
		c.opts.Recorder.Record(diag.NewEvent(diag.KindFetchFailed, q.ID, "", err, now))
		msg := errors.Wrap(errors.ErrGoalsUnavailable, err.Error()).Error()
		res := domain.DegradedResult(q, msg, now)
		res.Total = q.Target
		res.Quantitative = &domain.QuantitativeBreakdown{
			Target:      q.Target,
			Scope:       q.Scope,
			PeriodDays:  q.PeriodDays,
			WindowStart: start,
			WindowEnd:   end,
		}
		return res.Normalize(), nil
	}

	var count int
	switch q.Scope {
	case constants.CountScopeTasks:
		count = c.countCompletedTasks(ctx, q, goals, start, end, now)
	case constants.CountScopeGoals:
		count = countCompletedGoals(goals, start, end)
	}

	elapsedDays := now.Sub(start).Hours() / 24
	if elapsedDays < 1 {
		elapsedDays = 1
	}
	rate := float64(count) / elapsedDays

	res := &domain.ProgressResult{
		QuestID:     q.ID,
		Kind:        q.Kind,
		Percentage:  float64(count) / float64(q.Target) * 100,
		Completed:   count,
		Total:       q.Target,
		LastUpdated: now,
		Quantitative: &domain.QuantitativeBreakdown{
			Target:      q.Target,
			Current:     count,
			Scope:       q.Scope,
			PeriodDays:  q.PeriodDays,
			WindowStart: start,
			WindowEnd:   end,
			RatePerDay:  rate,
		},
	}

	switch {
	case count >= q.Target:
		res.Status = constants.ProgressCompleted
	case q.Status == constants.QuestStatusActive && count > 0:
		res.Status = constants.ProgressInProgress
	default:
		res.Status = constants.ProgressNotStarted
	}

	if res.Status == constants.ProgressInProgress && rate > 0 {
		remaining := q.Target - count
		eta := now.Add(time.Duration(float64(remaining) / rate * float64(constants.Day)))
		// The projection never reaches past the window itself.
		if eta.After(end) {
			eta = end
		}
		res.EstimatedCompletion = &eta
	}
	return res.Normalize(), nil
}

// countCompletedTasks fetches tasks per goal and counts those whose
// completion instant falls inside (start, end]. Per-goal fetch failures are
// recorded and skipped; a goal whose tasks cannot be fetched contributes
// zero, trading completeness for availability.
func (c *Quantitative) countCompletedTasks(ctx context.Context, q *domain.Quest, goals []domain.Goal, start, end, now time.Time) int {
	counts := make([]int, len(goals))

	var g errgroup.Group
	g.SetLimit(c.opts.Concurrency)
	for i, goal := range goals {
		i, goal := i, goal
		g.Go(func() error {
			tasks, err := c.src.GoalTasks(ctx, goal.ID)
			if err != nil {
				c.opts.Recorder.Record(diag.NewEvent(diag.KindFetchSkipped, q.ID, goal.ID, err, now))
				return nil
			}
			for j := range tasks {
				if at, ok := tasks[j].CompletionTime(); ok && inWindow(at, start, end) {
					counts[i]++
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// countCompletedGoals counts goals whose completion instant falls inside
// (start, end]. Purely in-memory; no partial-failure path.
func countCompletedGoals(goals []domain.Goal, start, end time.Time) int {
	count := 0
	for i := range goals {
		if at, ok := goals[i].CompletionTime(); ok && inWindow(at, start, end) {
			count++
		}
	}
	return count
}

// inWindow reports whether at falls inside the half-open window (start, end]:
// strictly after start, at-or-before end.
func inWindow(at, start, end time.Time) bool {
	return at.After(start) && !at.After(end)
}

// completedQuantitativeResult is the evidence-free short circuit for quests
// whose lifecycle status is already completed: 100% against the target with
// no fetch, mirroring the linked-kind short circuit.
func completedQuantitativeResult(q *domain.Quest, now time.Time) *domain.ProgressResult {
	breakdown := &domain.QuantitativeBreakdown{
		Target:     q.Target,
		Current:    q.Target,
		Scope:      q.Scope,
		PeriodDays: q.PeriodDays,
	}
	if start, ok := q.EffectiveStart(); ok {
		breakdown.WindowStart = start
		breakdown.WindowEnd = q.WindowEnd(start)
	}
	res := &domain.ProgressResult{
		QuestID:      q.ID,
		Kind:         q.Kind,
		Percentage:   100,
		Status:       constants.ProgressCompleted,
		Completed:    q.Target,
		Total:        q.Target,
		LastUpdated:  now,
		Quantitative: breakdown,
	}
	return res.Normalize()
}
