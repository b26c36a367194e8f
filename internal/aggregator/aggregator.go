// Package aggregator fans a search out to every configured job source, runs
// the result pipeline and returns one ranked page.
package aggregator

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fastapply/fastapply/internal/filtering"
	"github.com/fastapply/fastapply/internal/jobs"
	"github.com/fastapply/fastapply/internal/match"
	"github.com/fastapply/fastapply/internal/sources"
)

// maxQuerySkills caps how many skills make it into the source query string.
const maxQuerySkills = 6

type Aggregator struct {
	sources []sources.Source
	scorer  match.Scorer
	logger  *zap.Logger

	// SourceTimeout bounds a single source call. Zero means no deadline
	// beyond the fetch client's own.
	SourceTimeout time.Duration
}

func New(srcs []sources.Source, scorer match.Scorer, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		sources: srcs,
		scorer:  scorer,
		logger:  logger,
	}
}

// Search runs the full pipeline for one request. It never fails: a source
// failure degrades completeness and any unexpected pipeline error degrades to
// an empty result.
func (a *Aggregator) Search(ctx context.Context, req *jobs.SearchRequest) *jobs.SearchResult {
	if req == nil || len(req.Skills) == 0 {
		return jobs.EmptyResult()
	}

	query := buildQuery(req.Skills)
	merged := a.fanOut(ctx, query)

	a.logger.Info("collected postings",
		zap.String("query", query),
		zap.Int("count", merged.Len()),
		zap.Int("sources", len(a.sources)),
	)

	steps := []filtering.Step{
		filtering.NewDedupe(),
		filtering.NewCountry(),
		filtering.NewMatch(),
		filtering.NewSalary(),
	}
	deps := filtering.Deps{Logger: a.logger, Scorer: a.scorer, Request: req}

	filtered, err := filtering.Run(ctx, deps, steps, merged)
	if err != nil {
		a.logger.Error("pipeline failed", zap.Error(err))
		return jobs.EmptyResult()
	}

	sort.SliceStable(filtered.Items, func(i, j int) bool {
		return filtered.Items[i].MatchPercent > filtered.Items[j].MatchPercent
	})

	return jobs.Paginate(filtered.Items, req.Page)
}

// fanOut queries every source concurrently and merges the results in source
// order. Failures are logged and recorded as zero results for that source.
func (a *Aggregator) fanOut(ctx context.Context, query string) *jobs.Postings {
	results := make([][]*jobs.Posting, len(a.sources))

	var g errgroup.Group
	for i, src := range a.sources {
		g.Go(func() error {
			srcCtx := ctx
			if a.SourceTimeout > 0 {
				var cancel context.CancelFunc
				srcCtx, cancel = context.WithTimeout(ctx, a.SourceTimeout)
				defer cancel()
			}

			postings, err := src.Search(srcCtx, query)
			if err != nil {
				a.logger.Warn("source unavailable",
					zap.String("source", src.Name()),
					zap.Error(err),
				)
				return nil
			}

			a.logger.Debug("source returned postings",
				zap.String("source", src.Name()),
				zap.Int("count", len(postings)),
			)
			results[i] = postings
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never return errors, failures are absorbed

	merged := &jobs.Postings{}
	for _, postings := range results {
		merged.Append(postings...)
	}
	return merged
}

func buildQuery(skills []string) string {
	if len(skills) > maxQuerySkills {
		skills = skills[:maxQuerySkills]
	}
	return strings.Join(skills, " ")
}
