package corpus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFeedProviderSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got == "" {
			t.Errorf("expected q param, got none")
		}
		if got := r.URL.Query().Get("limit"); got != "3" {
			t.Errorf("limit param = %q, want 3", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[
			{"id":"f-1","title":"Go Developer","company":"Acme","location":"Remote","description":"Go services","url":"https://example.com/f1","posted_date":"2024-02-01","required_skills":["go"]},
			{"id":"f-2","title":"","company":"Skip","location":"","description":"","url":""}
		]}`))
	}))
	t.Cleanup(srv.Close)

	provider := NewFeedProvider(srv.URL, 2*time.Second)
	postings, err := provider.Search(context.Background(), Query{Keywords: []string{"go"}, Limit: 3})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(postings) != 1 {
		t.Fatalf("expected 1 posting (untitled dropped), got %d", len(postings))
	}
	if postings[0].ID != "f-1" || postings[0].RequiredSkills[0] != "go" {
		t.Fatalf("unexpected posting: %+v", postings[0])
	}
}

func TestFeedProviderSearchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	provider := NewFeedProvider(srv.URL, 2*time.Second)
	_, err := provider.Search(context.Background(), Query{Keywords: []string{"go"}})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFeedProviderRequiresURL(t *testing.T) {
	provider := NewFeedProvider("", time.Second)
	_, err := provider.Search(context.Background(), Query{})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
