package profile

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeDedupesSkillsPreservingOrder(t *testing.T) {
	p, err := Normalize(Profile{
		Name:   "Ada Lovelace",
		Skills: []string{" Python ", "SQL", "python", "", "Go", "sql"},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []string{"python", "sql", "go"}
	if !reflect.DeepEqual(p.Skills, want) {
		t.Fatalf("skills = %v, want %v", p.Skills, want)
	}
}

func TestNormalizeRejectsEmptyProfile(t *testing.T) {
	_, err := Normalize(Profile{Name: "Nobody", Skills: []string{"  ", ""}})
	if !errors.Is(err, ErrEmptyProfile) {
		t.Fatalf("expected ErrEmptyProfile, got %v", err)
	}
}

func TestNormalizeAcceptsExperienceOnly(t *testing.T) {
	p, err := Normalize(Profile{
		Experience: []Experience{{Title: "Data Analyst", Company: "Acme"}},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(p.Skills) != 0 {
		t.Fatalf("expected empty skills slice, got %v", p.Skills)
	}
	if p.Skills == nil {
		t.Fatal("skills must be a slice, not nil")
	}
}

func TestNormalizeDates(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-15", "2024-01-15"},
		{"2024-01", "2024-01"},
		{"2024", "2024"},
		{"Jan 2024", "2024-01"},
		{"Present", ""},
		{"current", ""},
		{"garbage", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeDate(tc.in); got != tc.want {
			t.Errorf("normalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeOrdersExperienceMostRecentFirst(t *testing.T) {
	p, err := Normalize(Profile{
		Skills: []string{"go"},
		Experience: []Experience{
			{Title: "Junior Dev", Company: "A", StartDate: "2015-06", EndDate: "2018-01"},
			{Title: "Staff Dev", Company: "C", StartDate: "2021-03", EndDate: "present"},
			{Title: "Senior Dev", Company: "B", StartDate: "2018-02", EndDate: "2021-02"},
		},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	titles := []string{p.Experience[0].Title, p.Experience[1].Title, p.Experience[2].Title}
	want := []string{"Staff Dev", "Senior Dev", "Junior Dev"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("experience order = %v, want %v", titles, want)
	}
	if p.Experience[0].EndDate != "" {
		t.Fatalf("ongoing end date should normalize to empty, got %q", p.Experience[0].EndDate)
	}
}

func TestExperienceLevelBuckets(t *testing.T) {
	cases := []struct {
		exps []Experience
		want string
	}{
		{nil, "entry level"},
		{[]Experience{{Title: "Dev", Company: "A", StartDate: "2022", EndDate: "2023"}}, "junior"},
		{[]Experience{{Title: "Dev", Company: "A", StartDate: "2018", EndDate: "2023"}}, "mid level"},
		{[]Experience{{Title: "Dev", Company: "A", StartDate: "2010", EndDate: "2023"}}, "senior"},
	}
	for _, tc := range cases {
		p := Profile{Experience: tc.exps}
		if got := p.ExperienceLevel(); got != tc.want {
			t.Errorf("ExperienceLevel() with %v = %q, want %q", tc.exps, got, tc.want)
		}
	}
}

func TestFirstName(t *testing.T) {
	if got := (Profile{Name: "Grace Hopper"}).FirstName(); got != "Grace" {
		t.Fatalf("FirstName = %q, want Grace", got)
	}
	if got := (Profile{}).FirstName(); got != "there" {
		t.Fatalf("FirstName on empty = %q, want there", got)
	}
}
