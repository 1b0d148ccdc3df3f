package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// FeedProvider fetches postings from an external HTTP job feed that serves
// JSON. The feed owns crawling; this client only queries it.
type FeedProvider struct {
	baseURL string
	client  *http.Client
}

// NewFeedProvider constructs a FeedProvider with a shared HTTP client.
func NewFeedProvider(baseURL string, timeout time.Duration) *FeedProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &FeedProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// feedResponse mirrors the feed's top-level JSON shape.
type feedResponse struct {
	Jobs []feedJob `json:"jobs"`
}

type feedJob struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Salary         string   `json:"salary"`
	URL            string   `json:"url"`
	PostedDate     string   `json:"posted_date"`
	RequiredSkills []string `json:"required_skills"`
}

// Search queries the feed with the rendered search terms.
func (f *FeedProvider) Search(ctx context.Context, q Query) ([]JobPosting, error) {
	if f.baseURL == "" {
		return nil, fmt.Errorf("%w: feed url not configured", ErrUnavailable)
	}

	endpoint, err := url.Parse(f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	params := endpoint.Query()
	params.Set("q", q.Terms())
	if q.Location != "" {
		params.Set("location", q.Location)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: feed returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode feed response: %v", ErrUnavailable, err)
	}

	out := make([]JobPosting, 0, len(payload.Jobs))
	for _, job := range payload.Jobs {
		if job.Title == "" {
			continue
		}
		out = append(out, JobPosting{
			ID:             job.ID,
			Title:          job.Title,
			Company:        job.Company,
			Location:       job.Location,
			Description:    job.Description,
			Salary:         job.Salary,
			URL:            job.URL,
			PostedDate:     job.PostedDate,
			RequiredSkills: job.RequiredSkills,
		})
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}
