// Package filtering runs the search result pipeline: each step takes the
// current posting list and returns a (possibly reduced or enriched) list plus
// bookkeeping about what it dropped.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastapply/fastapply/internal/jobs"
	"github.com/fastapply/fastapply/internal/match"
)

// Step is a single pipeline stage applied to postings.
type Step interface {
	Name() string
	Apply(ctx context.Context, deps Deps, p *jobs.Postings) (*jobs.Postings, Result, error)
}

// Deps aggregates dependencies shared across all pipeline steps.
type Deps struct {
	Logger  *zap.Logger
	Scorer  match.Scorer
	Request *jobs.SearchRequest
}

// Result describes the outcome of executing one step.
type Result struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied steps sequentially, returning the resulting
// posting list.
func Run(ctx context.Context, deps Deps, steps []Step, p *jobs.Postings) (*jobs.Postings, error) {
	for _, step := range steps {
		next, info, err := step.Apply(ctx, deps, p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Debug("pipeline step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		p = next
	}

	return p, nil
}
