package profile

// Experience is one work history entry. Entries are held most-recent first;
// an empty EndDate means the position is ongoing.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Education is one education entry.
type Education struct {
	Degree       string `json:"degree"`
	Institution  string `json:"institution"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

// Profile is the normalized candidate profile a chat session is bound to.
// It is immutable for the lifetime of the session that holds it.
type Profile struct {
	Name       string       `json:"name"`
	Email      string       `json:"email,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Summary    string       `json:"summary,omitempty"`
}

// FirstName returns the candidate's first name, or "there" when unknown,
// for use in conversational replies.
func (p Profile) FirstName() string {
	for _, part := range splitWords(p.Name) {
		return part
	}
	return "there"
}

// TopSkills returns up to n leading skills in first-seen order.
func (p Profile) TopSkills(n int) []string {
	if n > len(p.Skills) {
		n = len(p.Skills)
	}
	out := make([]string, n)
	copy(out, p.Skills[:n])
	return out
}

// YearsOfExperience sums whole years across dated positions. Ongoing
// positions contribute nothing; the estimate only needs to be coarse
// enough to pick a seniority bucket.
func (p Profile) YearsOfExperience() int {
	months := 0
	for _, exp := range p.Experience {
		start, ok := yearOf(exp.StartDate)
		if !ok {
			continue
		}
		end, ok := yearOf(exp.EndDate)
		if !ok {
			continue
		}
		if end > start {
			months += (end - start) * 12
		}
	}
	return months / 12
}

// ExperienceLevel buckets total experience into a search-friendly label.
func (p Profile) ExperienceLevel() string {
	years := p.YearsOfExperience()
	switch {
	case years < 1:
		return "entry level"
	case years < 3:
		return "junior"
	case years < 7:
		return "mid level"
	default:
		return "senior"
	}
}

func yearOf(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year := 0
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return 0, false
		}
		year = year*10 + int(r-'0')
	}
	return year, true
}
