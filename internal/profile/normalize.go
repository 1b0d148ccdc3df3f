package profile

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// Normalize validates and canonicalizes raw extracted resume fields.
// Skills are lower-cased, trimmed and deduplicated preserving first-seen
// order; dates are ISO-normalized with "present"-style values mapped to
// empty (ongoing); experience is ordered most-recent first. Pure: the
// input is not mutated.
func Normalize(raw Profile) (Profile, error) {
	out := Profile{
		Name:    strings.TrimSpace(raw.Name),
		Email:   strings.TrimSpace(raw.Email),
		Phone:   strings.TrimSpace(raw.Phone),
		Summary: strings.TrimSpace(raw.Summary),
		Skills:  normalizeSkills(raw.Skills),
	}

	out.Experience = make([]Experience, 0, len(raw.Experience))
	for _, exp := range raw.Experience {
		exp.Title = strings.TrimSpace(exp.Title)
		exp.Company = strings.TrimSpace(exp.Company)
		exp.StartDate = normalizeDate(exp.StartDate)
		exp.EndDate = normalizeDate(exp.EndDate)
		if exp.Title == "" && exp.Company == "" {
			continue
		}
		out.Experience = append(out.Experience, exp)
	}
	sortExperience(out.Experience)

	out.Education = make([]Education, 0, len(raw.Education))
	for _, edu := range raw.Education {
		edu.Degree = strings.TrimSpace(edu.Degree)
		edu.Institution = strings.TrimSpace(edu.Institution)
		edu.StartDate = normalizeDate(edu.StartDate)
		edu.EndDate = normalizeDate(edu.EndDate)
		if edu.Degree == "" && edu.Institution == "" {
			continue
		}
		out.Education = append(out.Education, edu)
	}

	if len(out.Skills) == 0 && len(out.Experience) == 0 {
		return Profile{}, ErrEmptyProfile
	}
	return out, nil
}

func normalizeSkills(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		skill := strings.ToLower(strings.TrimSpace(s))
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// sortExperience orders entries most-recent first: ongoing positions ahead
// of finished ones, then by start date descending. The sort is stable so
// undated entries keep their incoming order.
func sortExperience(exps []Experience) {
	sort.SliceStable(exps, func(i, j int) bool {
		iOngoing := exps[i].EndDate == ""
		jOngoing := exps[j].EndDate == ""
		if iOngoing != jOngoing {
			return iOngoing
		}
		return exps[i].StartDate > exps[j].StartDate
	})
}

var ongoingMarkers = map[string]struct{}{
	"present": {}, "current": {}, "now": {}, "ongoing": {}, "today": {},
}

var dateLayouts = []struct {
	in  string
	out string
}{
	{"2006-01-02", "2006-01-02"},
	{"2006-01", "2006-01"},
	{"2006", "2006"},
	{"01/2006", "2006-01"},
	{"Jan 2006", "2006-01"},
	{"January 2006", "2006-01"},
	{"Jan 2, 2006", "2006-01-02"},
	{"January 2, 2006", "2006-01-02"},
}

// normalizeDate maps a raw date string onto an ISO form, or empty when the
// value means "ongoing" or cannot be read as a date at all.
func normalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if _, ok := ongoingMarkers[strings.ToLower(s)]; ok {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout.in, s); err == nil {
			return t.Format(layout.out)
		}
	}
	return ""
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
