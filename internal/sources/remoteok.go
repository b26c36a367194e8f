package sources

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/fastapply/fastapply/internal/jobs"
)

const remoteokURL = "https://remoteok.com/api"

// remoteokJob is one entry of the RemoteOK API array. The array is
// heterogeneous (the first element is a legal notice), so entries are decoded
// from generic maps and records without a position are skipped.
type remoteokJob struct {
	ID          string   `json:"id"`
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Country     string   `json:"country"`
	URL         string   `json:"url"`
	Salary      string   `json:"salary"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
}

type remoteokSource struct {
	client *Client
	url    string
}

// NewRemoteOK returns the RemoteOK JSON API adapter.
func NewRemoteOK(client *Client) Source {
	return &remoteokSource{client: client, url: remoteokURL}
}

func (s *remoteokSource) Name() string { return "RemoteOK" }

func (s *remoteokSource) Search(ctx context.Context, _ string) ([]*jobs.Posting, error) {
	var raw []map[string]interface{}
	if err := s.client.GetJSON(ctx, s.url, nil, nil, &raw); err != nil {
		return nil, unavailable(s.Name(), err)
	}

	postings := make([]*jobs.Posting, 0, len(raw))
	for _, entry := range raw {
		job, err := decodeRemoteokJob(entry)
		if err != nil {
			return nil, unavailable(s.Name(), err)
		}
		if job.Position == "" {
			continue
		}

		description := job.Description
		if description == "" {
			description = strings.Join(job.Tags, " ")
		}

		location := job.Location
		if location == "" {
			location = job.Country
		}

		link := job.URL
		if link == "" && job.ID != "" {
			link = fmt.Sprintf("https://remoteok.com/remote-jobs/%s", job.ID)
		}

		postings = append(postings, &jobs.Posting{
			Title:       job.Position,
			Company:     job.Company,
			Description: stripHTML(description),
			Location:    location,
			Link:        link,
			Source:      s.Name(),
			Salary:      job.Salary,
			PostedAt:    job.Date,
			Tags:        job.Tags,
		})
	}

	return postings, nil
}

func decodeRemoteokJob(entry map[string]interface{}) (*remoteokJob, error) {
	var job remoteokJob

	cfg := &mapstructure.DecoderConfig{
		Result:           &job,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(entry); err != nil {
		return nil, err
	}

	return &job, nil
}
