package corpus

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepo is an in-memory corpus source. It backs development and tests
// and is the default when no database or feed is configured.
type MemoryRepo struct {
	mu       sync.RWMutex
	postings []JobPosting
}

// NewMemoryRepo constructs a MemoryRepo seeded with a small fixed corpus.
func NewMemoryRepo() *MemoryRepo {
	return NewMemoryRepoWith(seedPostings())
}

// NewMemoryRepoWith constructs a MemoryRepo holding the given postings.
func NewMemoryRepoWith(postings []JobPosting) *MemoryRepo {
	repo := &MemoryRepo{postings: make([]JobPosting, len(postings))}
	copy(repo.postings, postings)
	return repo
}

// Add appends postings to the corpus, minting an id for any posting
// that lacks one, and returns the stored postings.
func (r *MemoryRepo) Add(postings ...JobPosting) []JobPosting {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]JobPosting, 0, len(postings))
	for _, posting := range postings {
		if posting.ID == "" {
			posting.ID = uuid.NewString()
		}
		r.postings = append(r.postings, posting)
		stored = append(stored, posting)
	}
	return stored
}

// Search returns postings whose title, description or required skills
// contain any query keyword, up to q.Limit. An empty keyword list matches
// everything.
func (r *MemoryRepo) Search(ctx context.Context, q Query) ([]JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]JobPosting, 0, len(r.postings))
	for _, posting := range r.postings {
		if matchesKeywords(posting, q.Keywords) {
			out = append(out, posting)
		}
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}

func matchesKeywords(posting JobPosting, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	haystack := strings.ToLower(posting.Title + " " + posting.Description + " " + strings.Join(posting.RequiredSkills, " "))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// seedPostings is the built-in corpus. Fixed ids and dates keep ranking
// reproducible.
func seedPostings() []JobPosting {
	return []JobPosting{
		{
			ID:             "seed-python-dev",
			Title:          "Python Developer",
			Company:        "Tech Solutions Inc.",
			Location:       "Remote",
			URL:            "https://example.com/job1",
			Description:    "Looking for Python developer with FastAPI and React experience. Minimum 2 years experience required.",
			PostedDate:     "2024-01-15",
			Salary:         "$80,000 - $120,000",
			RequiredSkills: []string{"python", "fastapi", "react"},
		},
		{
			ID:             "seed-fullstack-eng",
			Title:          "Full Stack Engineer",
			Company:        "Innovate Co.",
			Location:       "New York, NY",
			URL:            "https://example.com/job2",
			Description:    "Join our team as a Full Stack Engineer working with React, Python, and AWS.",
			PostedDate:     "2024-01-10",
			Salary:         "$90,000 - $130,000",
			RequiredSkills: []string{"react", "python", "aws"},
		},
		{
			ID:             "seed-software-dev",
			Title:          "Software Developer",
			Company:        "Digital Systems",
			Location:       "Remote",
			URL:            "https://example.com/job3",
			Description:    "We're hiring a Software Developer with JavaScript and Python skills.",
			PostedDate:     "2024-01-05",
			Salary:         "$75,000 - $110,000",
			RequiredSkills: []string{"javascript", "python"},
		},
		{
			ID:             "seed-backend-dev",
			Title:          "Backend Developer",
			Company:        "DataTech",
			Location:       "Austin, TX",
			URL:            "https://example.com/job4",
			Description:    "Backend developer position focusing on API development with FastAPI.",
			PostedDate:     "2024-01-03",
			Salary:         "$85,000 - $125,000",
			RequiredSkills: []string{"python", "fastapi", "sql"},
		},
		{
			ID:             "seed-data-analyst",
			Title:          "Data Analyst",
			Company:        "Insight Analytics",
			Location:       "Remote",
			URL:            "https://example.com/job5",
			Description:    "Data Analyst role working with SQL, Python and dashboarding tools.",
			PostedDate:     "2024-01-12",
			Salary:         "$70,000 - $100,000",
			RequiredSkills: []string{"sql", "python", "excel"},
		},
	}
}
