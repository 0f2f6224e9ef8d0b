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

// Linked computes progress for linked-kind quests: quests that track an
// explicitly enumerated subset of tasks belonging to enumerated goals.
type Linked struct {
	src  source.Source
	opts Options
}

// NewLinked creates a linked-quest calculator over the given source.
func NewLinked(src source.Source, opts Options) *Linked {
	return &Linked{src: src, opts: opts.withDefaults()}
}

// Compute derives the progress result for one linked quest.
//
// The quest's lifecycle status is authoritative: a completed quest reports
// 100% from the cardinalities of its linked sets without any fetch. A quest
// with no linked tasks reports a measured 0%. Otherwise tasks are fetched
// per linked goal; a failing goal is skipped with a diagnostic, never
// aborting the computation, and the quest's configured linked-task count
// stays the denominator so partial failure cannot inflate the percentage.
//
// The only error return is the precondition violation for a quest of the
// wrong kind; every data problem degrades into the result itself.
func (c *Linked) Compute(ctx context.Context, q *domain.Quest) (*domain.ProgressResult, error) {
	if q.Kind != constants.QuestKindLinked {
		return nil, errors.Wrapf(errors.ErrWrongQuestKind, "quest %s has kind %q", q.ID, q.Kind)
	}

	now := c.opts.Clock.Now()

	if q.Status.IsCompleted() {
		return completedLinkedResult(q, now), nil
	}

	if len(q.TaskIDs) == 0 {
		res := &domain.ProgressResult{
			QuestID:     q.ID,
			Kind:        q.Kind,
			Status:      constants.ProgressNotStarted,
			LastUpdated: now,
			Linked: &domain.LinkedBreakdown{
				Goals: domain.NewSubProgress(0, len(q.GoalIDs)),
				Tasks: domain.NewSubProgress(0, 0),
			},
		}
		return res.Normalize(), nil
	}

	fetched := c.fetchLinkedTasks(ctx, q, now)

	linked := make(map[string]bool, len(q.TaskIDs))
	for _, id := range q.TaskIDs {
		linked[id] = true
	}

	// Intersect the fetched tasks with the quest's linked set. The final
	// counts are set-membership counts, insensitive to arrival order.
	var observed, completed int
	goalsDone := 0
	for _, tasks := range fetched {
		goalObserved, goalCompleted := 0, 0
		for i := range tasks {
			if !linked[tasks[i].ID] {
				continue
			}
			observed++
			goalObserved++
			if tasks[i].Status.IsCompleted() {
				completed++
				goalCompleted++
			}
		}
		if goalObserved > 0 && goalObserved == goalCompleted {
			goalsDone++
		}
	}

	total := len(q.TaskIDs)
	res := &domain.ProgressResult{
		QuestID:     q.ID,
		Kind:        q.Kind,
		Completed:   completed,
		Total:       total,
		LastUpdated: now,
		Linked: &domain.LinkedBreakdown{
			Goals: domain.NewSubProgress(goalsDone, len(q.GoalIDs)),
			Tasks: domain.NewSubProgress(completed, total),
		},
	}

	if observed == 0 {
		// Upstream returned nothing from the linked set. Without the
		// fallback this is a measured 0%; with it, elapsed time since the
		// quest started stands in for the missing evidence.
		if !c.opts.DisableFallback {
			res.Percentage = c.estimateFromElapsed(q, now)
			res.Estimated = true
			c.opts.Recorder.Record(diag.NewEvent(diag.KindEstimatedProgress, q.ID, "", nil, now))
		}
	} else {
		res.Percentage = float64(completed) / float64(total) * 100
	}

	res.Status = statusForPercent(res.Percentage)
	if res.Status == constants.ProgressInProgress && completed > 0 {
		res.EstimatedCompletion = extrapolateCompletion(q, now, completed, total-completed)
	}
	return res.Normalize(), nil
}

// fetchLinkedTasks fetches tasks for every linked goal concurrently.
// A failure fetching one goal's tasks is recorded and skipped; the slot for
// that goal stays nil. Results are merged order-independently by index.
func (c *Linked) fetchLinkedTasks(ctx context.Context, q *domain.Quest, now time.Time) [][]domain.Task {
	fetched := make([][]domain.Task, len(q.GoalIDs))

	var g errgroup.Group
	g.SetLimit(c.opts.Concurrency)
	for i, goalID := range q.GoalIDs {
		i, goalID := i, goalID
		g.Go(func() error {
			tasks, err := c.src.GoalTasks(ctx, goalID)
			if err != nil {
				c.opts.Recorder.Record(diag.NewEvent(diag.KindFetchSkipped, q.ID, goalID, err, now))
				return nil
			}
			fetched[i] = tasks
			return nil
		})
	}
	// Group functions never return errors; failures are skip-and-continue.
	_ = g.Wait()
	return fetched
}

// estimateFromElapsed is the degraded-data placeholder: a linear credit of
// FallbackDailyRate of the target per whole elapsed day since the quest
// started, capped at 100. Not a measurement.
func (c *Linked) estimateFromElapsed(q *domain.Quest, now time.Time) float64 {
	start, ok := q.EffectiveStart()
	if !ok {
		return 0
	}
	days := wholeDays(now.Sub(start))
	if days < 0 {
		days = 0
	}
	return domain.ClampPercent(float64(days) * c.opts.FallbackDailyRate * 100)
}

// completedLinkedResult is the evidence-free short circuit for quests whose
// lifecycle status is already completed: no fetch, 100% from the linked-set
// cardinalities alone.
func completedLinkedResult(q *domain.Quest, now time.Time) *domain.ProgressResult {
	total := len(q.TaskIDs)
	res := &domain.ProgressResult{
		QuestID:     q.ID,
		Kind:        q.Kind,
		Percentage:  100,
		Status:      constants.ProgressCompleted,
		Completed:   total,
		Total:       total,
		LastUpdated: now,
		Linked: &domain.LinkedBreakdown{
			Goals: domain.NewSubProgress(len(q.GoalIDs), len(q.GoalIDs)),
			Tasks: domain.NewSubProgress(total, total),
		},
	}
	return res.Normalize()
}

// statusForPercent maps a percentage onto the normalized progress status.
func statusForPercent(pct float64) constants.ProgressStatus {
	switch {
	case pct >= 100:
		return constants.ProgressCompleted
	case pct > 0:
		return constants.ProgressInProgress
	default:
		return constants.ProgressNotStarted
	}
}

// extrapolateCompletion projects a completion instant from the observed
// rate: completions per elapsed day since the quest started, applied to the
// remaining items from now. Returns nil when no start is known or the rate
// degenerates.
func extrapolateCompletion(q *domain.Quest, now time.Time, completed, remaining int) *time.Time {
	start, ok := q.EffectiveStart()
	if !ok || completed <= 0 {
		return nil
	}
	elapsedDays := now.Sub(start).Hours() / 24
	if elapsedDays < 1 {
		elapsedDays = 1
	}
	rate := float64(completed) / elapsedDays
	if rate <= 0 {
		return nil
	}
	eta := now.Add(time.Duration(float64(remaining) / rate * float64(constants.Day)))
	return &eta
}
