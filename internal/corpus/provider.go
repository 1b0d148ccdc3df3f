package corpus

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable marks corpus failures that the agent recovers from with a
// degraded reply; it never propagates past the session layer.
var ErrUnavailable = errors.New("job corpus unavailable")

// Query bounds a corpus search. Keywords drive matching; Level, Location
// and JobType are hints that sources may use or ignore.
type Query struct {
	Keywords []string
	Level    string
	Location string
	JobType  string
	Limit    int
}

// Terms renders the query as a single search string for sources that take
// free text (the feed provider), e.g. "python sql senior full time jobs".
func (q Query) Terms() string {
	parts := make([]string, 0, len(q.Keywords)+3)
	parts = append(parts, q.Keywords...)
	if q.Level != "" {
		parts = append(parts, q.Level)
	}
	if q.JobType != "" {
		parts = append(parts, q.JobType)
	}
	parts = append(parts, "jobs")
	return strings.Join(parts, " ")
}

// Provider is the external job corpus collaborator. Implementations must
// honor ctx cancellation; the caller bounds each search with a timeout.
type Provider interface {
	Search(ctx context.Context, q Query) ([]JobPosting, error)
}
