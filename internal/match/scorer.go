// Package match scores job postings against a skill set. Two strategies are
// available and callers pick one explicitly: the coverage scorer reports the
// share of skills found in the posting text, the weighted scorer combines
// skill, location and keyword signals.
package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/fastapply/fastapply/internal/jobs"
)

// Scorer computes a 0-100 relevance of a posting to a skill set.
type Scorer interface {
	Name() string
	Score(skills []string, p *jobs.Posting, country string) int
}

// ByName returns the scorer registered under the given strategy name. The
// empty string selects coverage.
func ByName(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "coverage":
		return Coverage{}, nil
	case "weighted":
		return Weighted{}, nil
	default:
		return nil, fmt.Errorf("unknown scorer strategy: %q", name)
	}
}

// countMatches returns how many distinct skills occur as a case-insensitive
// substring of text.
func countMatches(skills []string, text string) int {
	lower := strings.ToLower(text)
	matched := 0
	for _, skill := range skills {
		if skill == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			matched++
		}
	}
	return matched
}

// Coverage scores the fraction of skills present in the posting's title and
// description, floored at 10 for any non-empty skill set so a listing never
// shows a dead zero.
type Coverage struct{}

func (Coverage) Name() string { return "coverage" }

func (Coverage) Score(skills []string, p *jobs.Posting, _ string) int {
	if len(skills) == 0 {
		return 0
	}

	matched := countMatches(skills, p.Title+" "+p.Description)
	score := int(math.Round(float64(matched) / float64(len(skills)) * 100))
	if score < 10 {
		score = 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Weighted awards up to 60 points for skill hits (10 each), 20 for a remote or
// country-matching location and up to 20 for the words "experience" and
// "developer"/"engineer" in the description.
type Weighted struct{}

func (Weighted) Name() string { return "weighted" }

func (Weighted) Score(skills []string, p *jobs.Posting, country string) int {
	if len(skills) == 0 {
		return 0
	}

	desc := strings.ToLower(p.Description)
	loc := strings.ToLower(p.Location)

	score := countMatches(skills, p.Description) * 10
	if score > 60 {
		score = 60
	}

	switch {
	case strings.Contains(loc, "remote"):
		score += 20
	case country != "" && strings.Contains(loc, strings.ToLower(country)):
		score += 20
	}

	if strings.Contains(desc, "experience") {
		score += 10
	}
	if strings.Contains(desc, "developer") || strings.Contains(desc, "engineer") {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
