package jobs

import (
	"encoding/json"
	"os"
)

// PageSize is the number of postings returned per result page.
const PageSize = 10

// Posting is a job listing normalized to a common shape, regardless of which
// board it came from. MatchPercent is attached by the search pipeline and is
// not part of the source data.
type Posting struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Link         string   `json:"link"`
	Source       string   `json:"source"`
	Salary       string   `json:"salary,omitempty"`
	PostedAt     string   `json:"posted_at,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	MatchPercent int      `json:"matchPercent"`
}

// Key identifies a posting for deduplication. Listings with the same title and
// company are considered the same job even when boards disagree on the link.
func (p *Posting) Key() string {
	return p.Title + "\x00" + p.Company
}

type Postings struct {
	Items []*Posting
}

func (p *Postings) Len() int {
	return len(p.Items)
}

func (p *Postings) Append(items ...*Posting) {
	p.Items = append(p.Items, items...)
}

// Dedupe removes postings sharing a (title, company) key, keeping the first
// occurrence. Running it on an already deduplicated list is a no-op.
func (p *Postings) Dedupe() int {
	seen := make(map[string]struct{}, len(p.Items))
	kept := p.Items[:0]
	for _, item := range p.Items {
		key := item.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, item)
	}
	removed := len(p.Items) - len(kept)
	p.Items = kept
	return removed
}

func (p *Postings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.Items); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// SearchRequest is the single input of the search boundary.
type SearchRequest struct {
	Skills    []string `json:"skills" mapstructure:"skills"`
	Country   string   `json:"country" mapstructure:"country"`
	MinSalary int      `json:"minSalary" mapstructure:"min-salary"`
	Page      int      `json:"page" mapstructure:"page"`
}

// SearchResult is one page of ranked postings.
type SearchResult struct {
	Jobs       []*Posting `json:"jobs"`
	TotalPages int        `json:"totalPages"`
}

// EmptyResult is what the aggregator returns when there is nothing to search
// for or nothing survived the pipeline.
func EmptyResult() *SearchResult {
	return &SearchResult{Jobs: []*Posting{}, TotalPages: 0}
}

// Paginate slices postings into the requested 1-based page and reports the
// total page count. Pages past the end are empty, not an error.
func Paginate(items []*Posting, page int) *SearchResult {
	if len(items) == 0 {
		return EmptyResult()
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(items) + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	if start >= len(items) {
		return &SearchResult{Jobs: []*Posting{}, TotalPages: totalPages}
	}

	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}

	return &SearchResult{Jobs: items[start:end], TotalPages: totalPages}
}
