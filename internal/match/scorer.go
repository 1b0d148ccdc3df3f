// Package match scores job postings against a candidate profile. Scoring
// and ranking are pure functions so they can be exercised exhaustively
// without corpus I/O.
package match

import (
	"sort"
	"strings"
	"unicode"

	"jobhunter-backend/internal/corpus"
	"jobhunter-backend/internal/profile"
)

// Result pairs a posting with its compatibility score in [0,1].
type Result struct {
	Job        corpus.JobPosting `json:"job"`
	MatchScore float64           `json:"match_score"`
}

const (
	skillWeight = 0.7
	titleWeight = 0.3
)

// Score computes the weighted compatibility of a profile and a posting:
// skill-overlap ratio against the posting's required skills (weight 0.7)
// plus Jaccard proximity of the most recent experience title to the
// posting title (weight 0.3), clamped to [0,1].
func Score(p profile.Profile, job corpus.JobPosting) float64 {
	score := skillWeight*skillOverlap(p, job) + titleWeight*titleProximity(p, job)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// Rank scores every posting and sorts descending by score. Ties break by
// newer posted date, then ascending id, so re-ranking the same inputs
// always reproduces the identical sequence.
func Rank(p profile.Profile, jobs []corpus.JobPosting) []Result {
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, Result{Job: job, MatchScore: Score(p, job)})
	}
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if a.Job.PostedDate != b.Job.PostedDate {
			// ISO dates compare lexicographically; undated postings sink.
			return a.Job.PostedDate > b.Job.PostedDate
		}
		return a.Job.ID < b.Job.ID
	})
	return results
}

// skillOverlap is |profile skills ∩ required| / |required|. When a source
// supplies no required skills the overlap falls back to scanning the
// posting text for the profile's skills, ratioed against the profile.
func skillOverlap(p profile.Profile, job corpus.JobPosting) float64 {
	if len(job.RequiredSkills) > 0 {
		required := tokenSet(job.RequiredSkills)
		if len(required) == 0 {
			return 0
		}
		have := tokenSet(p.Skills)
		matched := 0
		for skill := range required {
			if _, ok := have[skill]; ok {
				matched++
			}
		}
		return float64(matched) / float64(len(required))
	}

	if len(p.Skills) == 0 {
		return 0
	}
	text := strings.ToLower(job.Title + " " + job.Description)
	matched := 0
	for _, skill := range p.Skills {
		if skill != "" && strings.Contains(text, strings.ToLower(skill)) {
			matched++
		}
	}
	return float64(matched) / float64(len(p.Skills))
}

// titleProximity is the Jaccard index of the token sets of the most recent
// experience title and the posting title. No experience means no signal.
func titleProximity(p profile.Profile, job corpus.JobPosting) float64 {
	if len(p.Experience) == 0 {
		return 0
	}
	mine := tokenSet(tokenize(p.Experience[0].Title))
	theirs := tokenSet(tokenize(job.Title))
	if len(mine) == 0 || len(theirs) == 0 {
		return 0
	}
	intersection := 0
	for tok := range mine {
		if _, ok := theirs[tok]; ok {
			intersection++
		}
	}
	union := len(mine) + len(theirs) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}

// tokenize splits on anything that is not a letter, digit, '+' or '#' so
// skills like "c++" and "c#" survive as single tokens.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
}
