package progress

import (
	"context"

	"github.com/questlabs/questlog/internal/constants"
	"github.com/questlabs/questlog/internal/domain"
	"github.com/questlabs/questlog/internal/errors"
	"github.com/questlabs/questlog/internal/source"
)

// Engine routes any quest to the calculator for its declared kind and
// normalizes both outputs to the common ProgressResult shape. It is the
// surface UI-facing callers use: it never returns an error, because callers
// cannot control the records they are handed. Malformed input degrades into
// a zero-progress result carrying an error string.
type Engine struct {
	linked       *Linked
	quantitative *Quantitative
	opts         Options
}

// New creates an Engine over the given source.
func New(src source.Source, opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		linked:       NewLinked(src, opts),
		quantitative: NewQuantitative(src, opts),
		opts:         opts,
	}
}

// Compute returns the progress result for any quest. Unknown kinds and
// precondition violations from the per-kind calculators come back as
// degraded results, not errors.
func (e *Engine) Compute(ctx context.Context, q *domain.Quest) *domain.ProgressResult {
	var (
		res *domain.ProgressResult
		err error
	)
	switch q.Kind {
	case constants.QuestKindLinked:
		res, err = e.linked.Compute(ctx, q)
	case constants.QuestKindQuantitative:
		res, err = e.quantitative.Compute(ctx, q)
	default:
		// Build the message from the sentinel so the degraded result carries
		// the same taxonomy a returned error would.
		kindErr := errors.Wrapf(errors.ErrUnknownQuestKind, "quest %s has kind %q", q.ID, q.Kind)
		return domain.DegradedResult(q, kindErr.Error(), e.opts.Clock.Now())
	}
	if err != nil {
		return domain.DegradedResult(q, err.Error(), e.opts.Clock.Now())
	}
	return res
}

// ComputeAll computes results for a quest collection in input order.
// Each quest's computation is independent; one degraded result never
// affects the others.
func (e *Engine) ComputeAll(ctx context.Context, quests []domain.Quest) []*domain.ProgressResult {
	results := make([]*domain.ProgressResult, len(quests))
	for i := range quests {
		results[i] = e.Compute(ctx, &quests[i])
	}
	return results
}
