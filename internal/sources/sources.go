// Package sources integrates external job boards. Each board implements the
// Source interface and owns its normalization into jobs.Posting; a broken
// board reports a *SourceError that the aggregator absorbs as zero results.
package sources

import (
	"context"
	"fmt"

	"github.com/fastapply/fastapply/internal/jobs"
)

// Source is a single external job board.
type Source interface {
	Name() string
	Search(ctx context.Context, query string) ([]*jobs.Posting, error)
}

// SourceError wraps a board's network or parse failure so callers can tell
// which source degraded without aborting the whole search.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func unavailable(source string, err error) error {
	return &SourceError{Source: source, Err: err}
}
