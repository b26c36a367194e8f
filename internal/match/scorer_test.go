package match

import (
	"testing"

	"github.com/fastapply/fastapply/internal/jobs"
)

func TestCoverageEmptySkillsScoreZero(t *testing.T) {
	p := &jobs.Posting{Title: "Dev", Description: "anything"}
	if got := (Coverage{}).Score(nil, p, ""); got != 0 {
		t.Fatalf("expected 0 for empty skills, got %d", got)
	}
}

func TestCoverageFullMatch(t *testing.T) {
	p := &jobs.Posting{Title: "Dev A", Description: "React and Node.js role"}
	if got := (Coverage{}).Score([]string{"React", "Node.js"}, p, ""); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestCoverageRounding(t *testing.T) {
	p := &jobs.Posting{Description: "go shop"}
	// 1 of 3 matched: round(33.33) = 33.
	if got := (Coverage{}).Score([]string{"go", "rust", "zig"}, p, ""); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	// 2 of 3 matched: round(66.67) = 67.
	p.Description = "go and rust shop"
	if got := (Coverage{}).Score([]string{"go", "rust", "zig"}, p, ""); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
}

func TestCoverageNeverZeroForNonEmptySkills(t *testing.T) {
	p := &jobs.Posting{Title: "Accountant", Description: "spreadsheets"}
	got := (Coverage{}).Score([]string{"react", "node.js"}, p, "")
	if got != 10 {
		t.Fatalf("expected floor of 10, got %d", got)
	}
	if got <= 0 || got > 100 {
		t.Fatalf("score out of range: %d", got)
	}
}

func TestWeightedCombinesSignals(t *testing.T) {
	p := &jobs.Posting{
		Description: "React developer with experience in Node.js",
		Location:    "Remote",
	}

	// 2 skill hits (20) + remote (20) + experience (10) + developer (10) = 60.
	if got := (Weighted{}).Score([]string{"react", "node.js"}, p, ""); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestWeightedSkillPointsCapped(t *testing.T) {
	p := &jobs.Posting{Description: "a b c d e f g h"}
	skills := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	// 8 hits cap at 60, no location or keyword bonus.
	if got := (Weighted{}).Score(skills, p, ""); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestWeightedCountryLocation(t *testing.T) {
	p := &jobs.Posting{Description: "react", Location: "Berlin, Germany"}
	if got := (Weighted{}).Score([]string{"react"}, p, "germany"); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	if got := (Weighted{}).Score([]string{"react"}, p, "france"); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}

func TestWeightedEmptySkillsScoreZero(t *testing.T) {
	p := &jobs.Posting{Description: "experience developer", Location: "Remote"}
	if got := (Weighted{}).Score(nil, p, ""); got != 0 {
		t.Fatalf("expected 0 for empty skills, got %d", got)
	}
}

func TestByName(t *testing.T) {
	for name, want := range map[string]string{"": "coverage", "coverage": "coverage", "Weighted": "weighted"} {
		s, err := ByName(name)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", name, err)
		}
		if s.Name() != want {
			t.Fatalf("%q: expected %s scorer, got %s", name, want, s.Name())
		}
	}

	if _, err := ByName("llm"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
