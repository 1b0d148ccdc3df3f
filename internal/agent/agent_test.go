package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"jobhunter-backend/internal/corpus"
	"jobhunter-backend/internal/intent"
	"jobhunter-backend/internal/profile"
)

// providerFunc adapts a function to corpus.Provider.
type providerFunc func(ctx context.Context, q corpus.Query) ([]corpus.JobPosting, error)

func (f providerFunc) Search(ctx context.Context, q corpus.Query) ([]corpus.JobPosting, error) {
	return f(ctx, q)
}

func analystProfile(t *testing.T) profile.Profile {
	t.Helper()
	p, err := profile.Normalize(profile.Profile{
		Name:   "Ada Lovelace",
		Skills: []string{"python", "sql"},
		Experience: []profile.Experience{
			{Title: "Data Analyst", Company: "Acme", StartDate: "2021-01"},
		},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return p
}

func TestNewAppendsGreeting(t *testing.T) {
	a := New(analystProfile(t), corpus.NewMemoryRepo(), nil, Config{})

	history := a.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 greeting message, got %d", len(history))
	}
	if history[0].Role != RoleAssistant {
		t.Fatalf("greeting role = %s, want assistant", history[0].Role)
	}
	if !strings.Contains(history[0].Content, "python") {
		t.Fatalf("greeting should mention top skills, got %q", history[0].Content)
	}
	if len(a.Suggestions()) != 0 {
		t.Fatal("greeting must not trigger a job search")
	}
}

func TestHandleTurnReportsIntent(t *testing.T) {
	a := New(analystProfile(t), corpus.NewMemoryRepo(), nil, Config{})

	cases := []struct {
		utterance string
		want      intent.Intent
	}{
		{"Find me job opportunities matching my skills", intent.SearchJobs},
		{"Give me feedback on my resume", intent.ResumeFeedback},
		{"What career advice do you have?", intent.CareerAdvice},
	}
	for _, tc := range cases {
		res, err := a.HandleTurn(context.Background(), tc.utterance)
		if err != nil {
			t.Fatalf("HandleTurn(%q): %v", tc.utterance, err)
		}
		if res.Intent != tc.want {
			t.Errorf("Intent for %q = %s, want %s", tc.utterance, res.Intent, tc.want)
		}
	}
}

// Scenario: a search turn yields a non-empty descending-ranked job list.
func TestHandleTurnSearchJobs(t *testing.T) {
	a := New(analystProfile(t), corpus.NewMemoryRepo(), nil, Config{})

	res, err := a.HandleTurn(context.Background(), "Find me job opportunities matching my skills")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if len(res.Suggestions) == 0 {
		t.Fatal("expected non-empty suggestions")
	}
	for i := 1; i < len(res.Suggestions); i++ {
		if res.Suggestions[i].MatchScore > res.Suggestions[i-1].MatchScore {
			t.Fatalf("suggestions not sorted descending: %v", res.Suggestions)
		}
	}
	if !strings.Contains(res.Message, "job opportunities") {
		t.Fatalf("reply should summarize results, got %q", res.Message)
	}

	history := a.History()
	if len(history) != 3 { // greeting + user + assistant
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[1].Role != RoleUser || history[2].Role != RoleAssistant {
		t.Fatalf("unexpected history roles: %+v", history)
	}
}

// Scenario: a feedback turn leaves the prior suggestions untouched.
func TestHandleTurnFeedbackKeepsSuggestions(t *testing.T) {
	a := New(analystProfile(t), corpus.NewMemoryRepo(), nil, Config{})

	first, err := a.HandleTurn(context.Background(), "find me jobs")
	if err != nil {
		t.Fatalf("search turn: %v", err)
	}
	res, err := a.HandleTurn(context.Background(), "Give me feedback on my resume")
	if err != nil {
		t.Fatalf("feedback turn: %v", err)
	}
	if len(res.Suggestions) != len(first.Suggestions) {
		t.Fatalf("suggestions changed on feedback turn: %d -> %d", len(first.Suggestions), len(res.Suggestions))
	}
	if res.Message == "" || strings.Contains(res.Message, "job opportunities for you") {
		t.Fatalf("expected feedback reply, got %q", res.Message)
	}
}

// Scenario: corpus failure degrades the reply but keeps the session live
// and appends exactly user + assistant.
func TestHandleTurnDegradedOnCorpusFailure(t *testing.T) {
	failing := providerFunc(func(ctx context.Context, q corpus.Query) ([]corpus.JobPosting, error) {
		return nil, corpus.ErrUnavailable
	})
	a := New(analystProfile(t), failing, nil, Config{})

	res, err := a.HandleTurn(context.Background(), "find me jobs")
	if err != nil {
		t.Fatalf("HandleTurn must not fail on corpus errors: %v", err)
	}
	if res.Message != degradedReply {
		t.Fatalf("message = %q, want degraded reply", res.Message)
	}
	if len(res.Suggestions) != 0 {
		t.Fatalf("suggestions should stay empty, got %d", len(res.Suggestions))
	}
	if got := len(a.History()); got != 3 {
		t.Fatalf("history length = %d, want 3 (greeting + user + degraded assistant)", got)
	}

	// The session is still READY: a following turn succeeds.
	if _, err := a.HandleTurn(context.Background(), "thanks anyway"); err != nil {
		t.Fatalf("turn after degraded reply: %v", err)
	}
}

func TestHandleTurnCorpusTimeout(t *testing.T) {
	slow := providerFunc(func(ctx context.Context, q corpus.Query) ([]corpus.JobPosting, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	a := New(analystProfile(t), slow, nil, Config{CorpusTimeout: 10 * time.Millisecond})

	res, err := a.HandleTurn(context.Background(), "find me jobs")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if res.Message != degradedReply {
		t.Fatalf("message = %q, want degraded reply on timeout", res.Message)
	}
}

func TestHandleTurnSearchReplacesSuggestionsWholesale(t *testing.T) {
	calls := 0
	flaky := providerFunc(func(ctx context.Context, q corpus.Query) ([]corpus.JobPosting, error) {
		calls++
		if calls == 1 {
			return []corpus.JobPosting{
				{ID: "one", Title: "Data Analyst", RequiredSkills: []string{"sql"}},
				{ID: "two", Title: "Python Dev", RequiredSkills: []string{"python"}},
			}, nil
		}
		return []corpus.JobPosting{
			{ID: "three", Title: "Analyst", RequiredSkills: []string{"sql", "python"}},
		}, nil
	})
	a := New(analystProfile(t), flaky, nil, Config{})

	if _, err := a.HandleTurn(context.Background(), "find jobs"); err != nil {
		t.Fatalf("first search: %v", err)
	}
	res, err := a.HandleTurn(context.Background(), "search again")
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if len(res.Suggestions) != 1 || res.Suggestions[0].Job.ID != "three" {
		t.Fatalf("suggestions not replaced wholesale: %+v", res.Suggestions)
	}
}

func TestHandleTurnFreeformMentionsSuggestionCount(t *testing.T) {
	a := New(analystProfile(t), corpus.NewMemoryRepo(), nil, Config{})

	if _, err := a.HandleTurn(context.Background(), "find me jobs"); err != nil {
		t.Fatalf("search turn: %v", err)
	}
	res, err := a.HandleTurn(context.Background(), "the weather is lovely")
	if err != nil {
		t.Fatalf("freeform turn: %v", err)
	}
	if !res.RequiresInput {
		t.Fatal("freeform reply should request input")
	}
	if !strings.Contains(res.Message, "suggestions") {
		t.Fatalf("freeform reply should echo suggestion count, got %q", res.Message)
	}
}

func TestHandleTurnAfterExpire(t *testing.T) {
	a := New(analystProfile(t), corpus.NewMemoryRepo(), nil, Config{})
	a.Expire()

	if _, err := a.HandleTurn(context.Background(), "hello"); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestHistorySequenceIsMonotonic(t *testing.T) {
	a := New(analystProfile(t), corpus.NewMemoryRepo(), nil, Config{})
	for _, msg := range []string{"hello", "find jobs", "give me feedback on my resume"} {
		if _, err := a.HandleTurn(context.Background(), msg); err != nil {
			t.Fatalf("HandleTurn(%q): %v", msg, err)
		}
	}
	for i, m := range a.History() {
		if m.Seq != i {
			t.Fatalf("history[%d].Seq = %d", i, m.Seq)
		}
	}
}

func TestAdvisorFailureFallsBackToLocalComposition(t *testing.T) {
	a := New(analystProfile(t), corpus.NewMemoryRepo(), failingAdvisor{}, Config{})

	res, err := a.HandleTurn(context.Background(), "give me feedback on my resume")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if !strings.Contains(res.Message, "suggestions") {
		t.Fatalf("expected local fallback feedback, got %q", res.Message)
	}
}

type failingAdvisor struct{}

func (failingAdvisor) ResumeFeedback(ctx context.Context, p profile.Profile) (string, error) {
	return "", errors.New("advisor offline")
}

func (failingAdvisor) CareerAdvice(ctx context.Context, p profile.Profile, q string) (string, error) {
	return "", errors.New("advisor offline")
}
