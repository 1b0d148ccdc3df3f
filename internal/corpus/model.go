package corpus

// JobPosting is one posting from a corpus source. RequiredSkills is a
// derived token set consumed by the scorer; it is not part of the wire
// shape shown to clients.
type JobPosting struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Salary         string   `json:"salary,omitempty"`
	URL            string   `json:"url"`
	PostedDate     string   `json:"posted_date,omitempty"`
	RequiredSkills []string `json:"-"`
}
