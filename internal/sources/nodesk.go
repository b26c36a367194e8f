package sources

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fastapply/fastapply/internal/jobs"
)

const nodeskURL = "https://nodesk.co/remote-jobs/"

// nodeskSource scrapes the NoDesk job board. There is no API, so postings are
// pulled out of the listing markup; the board rejects non-browser clients.
type nodeskSource struct {
	client *Client
	url    string
}

// NewNoDesk returns the NoDesk HTML scraping adapter.
func NewNoDesk(client *Client) Source {
	return &nodeskSource{client: client, url: nodeskURL}
}

func (s *nodeskSource) Name() string { return "NoDesk" }

func (s *nodeskSource) Search(ctx context.Context, _ string) ([]*jobs.Posting, error) {
	body, err := s.client.GetBody(ctx, s.url, nil, map[string]string{
		"User-Agent": browserUserAgent,
		"Accept":     "text/html",
	})
	if err != nil {
		return nil, unavailable(s.Name(), err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, unavailable(s.Name(), err)
	}

	var postings []*jobs.Posting
	doc.Find("li.job, article.job").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find("h2, h3").First().Text())
		if title == "" {
			return
		}

		link, _ := card.Find("a").First().Attr("href")
		if strings.HasPrefix(link, "/") {
			link = "https://nodesk.co" + link
		}

		location := strings.TrimSpace(card.Find(".location").First().Text())
		if location == "" {
			location = "Remote"
		}

		var tags []string
		card.Find(".tag, .category").Each(func(_ int, tag *goquery.Selection) {
			if text := strings.TrimSpace(tag.Text()); text != "" {
				tags = append(tags, text)
			}
		})

		postings = append(postings, &jobs.Posting{
			Title:       title,
			Company:     strings.TrimSpace(card.Find(".company").First().Text()),
			Description: strings.TrimSpace(card.Find(".description, p").First().Text()),
			Location:    location,
			Link:        link,
			Source:      s.Name(),
			Salary:      strings.TrimSpace(card.Find(".salary").First().Text()),
			Tags:        tags,
		})
	})

	return postings, nil
}
