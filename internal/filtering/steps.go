package filtering

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/fastapply/fastapply/internal/jobs"
)

// noSalary is the literal some boards use instead of an empty salary field.
const noSalary = "Not provided"

type dedupeStep struct{}

// NewDedupe creates the step that collapses postings sharing a
// (title, company) key, keeping the first-seen copy.
func NewDedupe() Step {
	return &dedupeStep{}
}

func (s *dedupeStep) Name() string { return "dedupe" }

func (s *dedupeStep) Apply(_ context.Context, _ Deps, p *jobs.Postings) (*jobs.Postings, Result, error) {
	initial := p.Len()
	removed := p.Dedupe()

	return p, Result{Initial: initial, Dropped: removed, Left: p.Len()}, nil
}

type countryStep struct{}

// NewCountry creates the step that keeps postings located in the requested
// country, explicitly remote, or with no stated location.
func NewCountry() Step {
	return &countryStep{}
}

func (s *countryStep) Name() string { return "country" }

func (s *countryStep) Apply(_ context.Context, deps Deps, p *jobs.Postings) (*jobs.Postings, Result, error) {
	initial := p.Len()

	country := strings.ToLower(strings.TrimSpace(deps.Request.Country))
	if country == "" {
		return p, Result{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := p.Items[:0]
	for _, posting := range p.Items {
		loc := strings.ToLower(posting.Location)
		if loc == "" || strings.Contains(loc, country) || strings.Contains(loc, "remote") {
			kept = append(kept, posting)
		}
	}
	p.Items = kept

	return p, Result{Initial: initial, Dropped: initial - p.Len(), Left: p.Len()}, nil
}

type matchStep struct{}

// NewMatch creates the enrichment step that attaches a match percentage to
// every posting. It never drops anything and leaves the source records
// untouched, scoring fresh copies instead.
func NewMatch() Step {
	return &matchStep{}
}

func (s *matchStep) Name() string { return "match" }

func (s *matchStep) Apply(_ context.Context, deps Deps, p *jobs.Postings) (*jobs.Postings, Result, error) {
	initial := p.Len()

	scored := &jobs.Postings{Items: make([]*jobs.Posting, 0, initial)}
	for _, posting := range p.Items {
		next := *posting
		next.MatchPercent = deps.Scorer.Score(deps.Request.Skills, &next, deps.Request.Country)
		scored.Append(&next)
	}

	return scored, Result{Initial: initial, Dropped: 0, Left: initial}, nil
}

type salaryStep struct{}

// NewSalary creates the step that enforces the minimum salary filter.
func NewSalary() Step {
	return &salaryStep{}
}

func (s *salaryStep) Name() string { return "salary" }

func (s *salaryStep) Apply(_ context.Context, deps Deps, p *jobs.Postings) (*jobs.Postings, Result, error) {
	initial := p.Len()

	if deps.Request.MinSalary <= 0 {
		return p, Result{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := p.Items[:0]
	for _, posting := range p.Items {
		salary := strings.TrimSpace(posting.Salary)
		if salary == "" || salary == noSalary {
			continue
		}
		// A salary string without digits parses to 0 and is dropped here,
		// the same as one below the threshold.
		if ParseSalary(salary) >= deps.Request.MinSalary {
			kept = append(kept, posting)
		}
	}
	p.Items = kept

	return p, Result{Initial: initial, Dropped: initial - p.Len(), Left: p.Len()}, nil
}

var salaryRe = regexp.MustCompile(`[0-9][0-9,]*`)

// ParseSalary extracts the first run of digits (thousands separators allowed)
// from a free-text salary string. Strings without digits parse to 0.
func ParseSalary(s string) int {
	run := salaryRe.FindString(s)
	if run == "" {
		return 0
	}

	value, err := strconv.Atoi(strings.ReplaceAll(run, ",", ""))
	if err != nil {
		return 0
	}
	return value
}
