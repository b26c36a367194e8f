package jobs

import "testing"

func TestDedupeKeepsFirstSeen(t *testing.T) {
	postings := &Postings{
		Items: []*Posting{
			{Title: "Dev A", Company: "Acme", Link: "https://one.example.com", Source: "first"},
			{Title: "Dev B", Company: "Acme", Source: "first"},
			{Title: "Dev A", Company: "Acme", Link: "https://two.example.com", Source: "second"},
		},
	}

	removed := postings.Dedupe()
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if postings.Len() != 2 {
		t.Fatalf("expected 2 postings, got %d", postings.Len())
	}
	if postings.Items[0].Link != "https://one.example.com" {
		t.Fatalf("expected first-seen copy to survive, got link %q", postings.Items[0].Link)
	}
}

func TestDedupeIsIdempotent(t *testing.T) {
	postings := &Postings{
		Items: []*Posting{
			{Title: "Dev A", Company: "Acme"},
			{Title: "Dev A", Company: "Acme"},
			{Title: "Dev A", Company: "Globex"},
		},
	}

	postings.Dedupe()
	if removed := postings.Dedupe(); removed != 0 {
		t.Fatalf("second dedupe removed %d postings, want 0", removed)
	}
	if postings.Len() != 2 {
		t.Fatalf("expected 2 postings, got %d", postings.Len())
	}
}

func TestDedupeIsCaseSensitive(t *testing.T) {
	postings := &Postings{
		Items: []*Posting{
			{Title: "Dev A", Company: "Acme"},
			{Title: "dev a", Company: "acme"},
		},
	}

	if removed := postings.Dedupe(); removed != 0 {
		t.Fatalf("case-insensitive collapse happened, removed %d", removed)
	}
}

func TestPaginateCoversEveryPostingOnce(t *testing.T) {
	items := make([]*Posting, 23)
	for i := range items {
		items[i] = &Posting{Title: "Job", Company: string(rune('a' + i))}
	}

	first := Paginate(items, 1)
	if first.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", first.TotalPages)
	}

	var collected []*Posting
	for page := 1; page <= first.TotalPages; page++ {
		collected = append(collected, Paginate(items, page).Jobs...)
	}
	if len(collected) != len(items) {
		t.Fatalf("pages produced %d postings, want %d", len(collected), len(items))
	}
	for i := range items {
		if collected[i] != items[i] {
			t.Fatalf("posting %d out of order across pages", i)
		}
	}
}

func TestPaginateEdges(t *testing.T) {
	if res := Paginate(nil, 1); res.TotalPages != 0 || len(res.Jobs) != 0 {
		t.Fatalf("empty input: got %d jobs, %d pages", len(res.Jobs), res.TotalPages)
	}

	items := []*Posting{{Title: "Only", Company: "One"}}
	res := Paginate(items, 5)
	if res.TotalPages != 1 {
		t.Fatalf("expected 1 total page, got %d", res.TotalPages)
	}
	if len(res.Jobs) != 0 {
		t.Fatalf("page past the end should be empty, got %d jobs", len(res.Jobs))
	}

	if res := Paginate(items, 0); len(res.Jobs) != 1 {
		t.Fatalf("page 0 should clamp to first page, got %d jobs", len(res.Jobs))
	}
}
