// Package profile derives structured resume fields from plain text using
// bounded heuristics. Extraction never fails: fields that cannot be found are
// reported with sentinel values.
package profile

import (
	"regexp"
	"strings"
)

// Sentinels reported when a heuristic finds nothing.
const (
	NotFound     = "Not Found"
	NoExperience = "No experience found"
	NoEducation  = "No education found"
)

const summaryLimit = 500

var (
	// Two capitalized words. Known to false-positive on any such phrase
	// ("New York", "Dear Sir"); accepted as a heuristic limitation.
	nameRe  = regexp.MustCompile(`\b([A-Z][a-z]{1,20}\s+[A-Z][a-z]{1,20})\b`)
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

var (
	experienceKeywords = []string{"experience", "developer", "intern", "work"}
	educationKeywords  = []string{"degree", "college", "university", "diploma", "certificate"}
)

// Profile holds the fields extracted from one resume. It is created once per
// upload and never mutated, only replaced by a new upload.
type Profile struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
}

// Extractor scans resume text against an injected skill vocabulary.
type Extractor struct {
	vocab Vocabulary
}

func NewExtractor(vocab Vocabulary) *Extractor {
	if len(vocab) == 0 {
		vocab = DefaultVocabulary()
	}
	return &Extractor{vocab: vocab}
}

func (e *Extractor) Extract(text string) Profile {
	return Profile{
		Name:       extractName(text),
		Email:      extractEmail(text),
		Skills:     e.extractSkills(text),
		Experience: summarize(text, experienceKeywords, NoExperience),
		Education:  summarize(text, educationKeywords, NoEducation),
	}
}

func extractName(text string) string {
	if match := nameRe.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}
	return NotFound
}

func extractEmail(text string) string {
	if match := emailRe.FindString(text); match != "" {
		return match
	}
	return NotFound
}

func (e *Extractor) extractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(e.vocab))
	for _, skill := range e.vocab {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// summarize keeps lines containing any of the keywords, joins them with a
// single space and truncates the result.
func summarize(text string, keywords []string, sentinel string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				kept = append(kept, line)
				break
			}
		}
	}

	if len(kept) == 0 {
		return sentinel
	}

	joined := strings.Join(kept, " ")
	if len(joined) > summaryLimit {
		joined = joined[:summaryLimit]
	}
	return joined
}
