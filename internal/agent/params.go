package agent

import (
	"strings"

	"jobhunter-backend/internal/corpus"
	"jobhunter-backend/internal/profile"
)

// searchParams are hints pulled out of a search utterance.
type searchParams struct {
	location string
	jobType  string
}

// extractSearchParams does shallow keyword extraction on the utterance:
// remote/hybrid as location, and the common employment types.
func extractSearchParams(utterance string) searchParams {
	lower := strings.ToLower(utterance)
	var params searchParams

	switch {
	case strings.Contains(lower, "remote"):
		params.location = "Remote"
	case strings.Contains(lower, "hybrid"):
		params.location = "Hybrid"
	}

	switch {
	case strings.Contains(lower, "full time"), strings.Contains(lower, "full-time"):
		params.jobType = "full time"
	case strings.Contains(lower, "part time"), strings.Contains(lower, "part-time"):
		params.jobType = "part time"
	case strings.Contains(lower, "internship"):
		params.jobType = "internship"
	}

	return params
}

// buildQuery synthesizes the corpus query from the profile's leading
// skills and seniority, plus whatever the utterance specified.
func buildQuery(p profile.Profile, params searchParams, limit int) corpus.Query {
	return corpus.Query{
		Keywords: p.TopSkills(3),
		Level:    p.ExperienceLevel(),
		Location: params.location,
		JobType:  params.jobType,
		Limit:    limit,
	}
}
