package sources

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fastapply/fastapply/internal/jobs"
)

const findworkURL = "https://findwork.dev/api/jobs/"

type findworkResponse struct {
	Results []findworkJob `json:"results"`
}

type findworkJob struct {
	Role        string   `json:"role"`
	CompanyName string   `json:"company_name"`
	Text        string   `json:"text"`
	Location    string   `json:"location"`
	URL         string   `json:"url"`
	Salary      string   `json:"salary"`
	DatePosted  string   `json:"date_posted"`
	Keywords    []string `json:"keywords"`
}

type findworkSource struct {
	client *Client
	url    string
	token  string
}

// NewFindwork returns the Findwork JSON API adapter. The token is optional;
// without it the API rejects requests and the failure is absorbed upstream.
func NewFindwork(client *Client, token string) Source {
	return &findworkSource{client: client, url: findworkURL, token: token}
}

func (s *findworkSource) Name() string { return "FindWork" }

func (s *findworkSource) Search(ctx context.Context, query string) ([]*jobs.Posting, error) {
	q := url.Values{}
	q.Set("remote", "true")
	if query != "" {
		q.Set("search", query)
	}

	var headers map[string]string
	if s.token != "" {
		headers = map[string]string{"Authorization": fmt.Sprintf("Token %s", s.token)}
	}

	var response findworkResponse
	if err := s.client.GetJSON(ctx, s.url, q, headers, &response); err != nil {
		return nil, unavailable(s.Name(), err)
	}

	postings := make([]*jobs.Posting, 0, len(response.Results))
	for _, job := range response.Results {
		location := job.Location
		if location == "" {
			location = "Remote"
		}

		postings = append(postings, &jobs.Posting{
			Title:       job.Role,
			Company:     job.CompanyName,
			Description: stripHTML(job.Text),
			Location:    location,
			Link:        job.URL,
			Source:      s.Name(),
			Salary:      job.Salary,
			PostedAt:    job.DatePosted,
			Tags:        job.Keywords,
		})
	}

	return postings, nil
}
