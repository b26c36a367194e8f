package sources

import (
	"context"
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fastapply/fastapply/internal/jobs"
)

// rssFeed models the subset of RSS 2.0 the remote boards publish. dc:creator
// carries the company name on job feeds; matching is by local element name so
// the namespace prefix does not matter.
type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Creator     string   `xml:"creator"`
	Categories  []string `xml:"category"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
}

// feedSource is the shared base for boards that publish plain RSS feeds. Such
// feeds carry the full recent listing and take no query parameter; relevance
// is left to the match pipeline.
type feedSource struct {
	name   string
	url    string
	client *Client
}

// NewJobicy returns the Jobicy RSS adapter.
func NewJobicy(client *Client) Source {
	return &feedSource{name: "Jobicy", url: "https://jobicy.com/feed", client: client}
}

// NewWorkAnywhere returns the WorkAnywhere RSS adapter.
func NewWorkAnywhere(client *Client) Source {
	return &feedSource{name: "WorkAnywhere", url: "https://workanywhere.pro/jobs/feed/", client: client}
}

// NewWeWorkRemotely returns the We Work Remotely RSS adapter.
func NewWeWorkRemotely(client *Client) Source {
	return &feedSource{name: "WeWorkRemotely", url: "https://weworkremotely.com/remote-jobs.rss", client: client}
}

func (s *feedSource) Name() string { return s.name }

func (s *feedSource) Search(ctx context.Context, _ string) ([]*jobs.Posting, error) {
	body, err := s.client.GetBody(ctx, s.url, nil, nil)
	if err != nil {
		return nil, unavailable(s.name, err)
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, unavailable(s.name, err)
	}

	postings := make([]*jobs.Posting, 0, len(feed.Channel.Items))
	for _, item := range feed.Channel.Items {
		link := item.Link
		if link == "" {
			link = item.GUID
		}

		location := "Remote"
		if len(item.Categories) > 0 && item.Categories[0] != "" {
			location = item.Categories[0]
		}

		postings = append(postings, &jobs.Posting{
			Title:       strings.TrimSpace(item.Title),
			Company:     strings.TrimSpace(item.Creator),
			Description: stripHTML(item.Description),
			Location:    location,
			Link:        strings.TrimSpace(link),
			Source:      s.name,
			PostedAt:    item.PubDate,
			Tags:        item.Categories,
		})
	}

	return postings, nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// stripHTML flattens HTML markup (feed descriptions usually carry it) into
// whitespace-normalized plain text.
func stripHTML(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	return whitespaceRe.ReplaceAllString(strings.TrimSpace(doc.Text()), " ")
}
