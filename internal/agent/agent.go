// Package agent holds the per-session conversational state machine: it
// owns the history log, classifies each turn, and produces a reply plus a
// ranked job list scored against the session's profile.
package agent

import (
	"context"
	"errors"
	"sync"
	"time"

	"jobhunter-backend/internal/corpus"
	"jobhunter-backend/internal/intent"
	"jobhunter-backend/internal/match"
	"jobhunter-backend/internal/profile"
	"jobhunter-backend/internal/shared/telemetry"
)

// ErrExpired rejects turns on an agent that has been evicted.
var ErrExpired = errors.New("session expired")

// Config bounds turn processing.
type Config struct {
	// SearchLimit caps corpus results fetched before scoring.
	SearchLimit int
	// CorpusTimeout bounds each corpus query; on expiry the turn takes
	// the degraded-reply path.
	CorpusTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.SearchLimit <= 0 {
		c.SearchLimit = 8
	}
	if c.CorpusTimeout <= 0 {
		c.CorpusTimeout = 10 * time.Second
	}
	return c
}

// Agent is a session-scoped conversational agent. The mutex serializes
// turns so concurrent requests for one session append in arrival order;
// agents for different sessions share nothing.
type Agent struct {
	mu sync.Mutex

	profile profile.Profile
	corpus  corpus.Provider
	advisor Advisor
	cfg     Config
	now     func() time.Time

	history         []Message
	lastSuggestions []match.Result
	lastIntent      intent.Intent
	expired         bool
}

// New binds an agent to a normalized profile and synthesizes the opening
// greeting. The agent is ready for turns as soon as New returns.
func New(p profile.Profile, provider corpus.Provider, advisor Advisor, cfg Config) *Agent {
	if advisor == nil {
		advisor = StaticAdvisor{}
	}
	a := &Agent{
		profile: p,
		corpus:  provider,
		advisor: advisor,
		cfg:     cfg.withDefaults(),
		now:     time.Now,
	}
	a.append(RoleAssistant, composeGreeting(p))
	return a
}

// HandleTurn processes one user utterance atomically: it appends the user
// message, classifies it, branches on intent, appends the assistant reply
// and returns it. A corpus failure degrades the reply but never corrupts
// state; the agent stays ready for the next turn.
func (a *Agent) HandleTurn(ctx context.Context, content string) (TurnResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.expired {
		return TurnResult{}, ErrExpired
	}

	a.append(RoleUser, content)
	it := intent.Classify(content, a.lastIntent)
	a.lastIntent = it

	result := TurnResult{Intent: it}
	switch it {
	case intent.SearchJobs:
		result.Message = a.searchTurn(ctx, content)
	case intent.ResumeFeedback:
		result.Message = a.feedbackTurn(ctx)
	case intent.CareerAdvice:
		result.Message = a.adviceTurn(ctx, content)
	case intent.Greeting:
		result.Message = composeGreeting(a.profile)
		result.RequiresInput = true
	default:
		result.Message = composeFreeform(len(a.lastSuggestions))
		result.RequiresInput = true
	}

	a.append(RoleAssistant, result.Message)
	result.Suggestions = copyResults(a.lastSuggestions)
	return result, nil
}

// searchTurn queries the corpus, ranks the postings and replaces the
// suggestion list wholesale. On any provider failure the previous
// suggestions are kept and a degraded reply is returned.
func (a *Agent) searchTurn(ctx context.Context, content string) string {
	params := extractSearchParams(content)
	query := buildQuery(a.profile, params, a.cfg.SearchLimit)

	queryCtx, cancel := context.WithTimeout(ctx, a.cfg.CorpusTimeout)
	defer cancel()

	postings, err := a.corpus.Search(queryCtx, query)
	if err != nil {
		telemetry.Error("agent.corpus_search_failed", map[string]any{
			"error":    err.Error(),
			"keywords": query.Keywords,
		})
		return degradedReply
	}

	results := match.Rank(a.profile, postings)
	a.lastSuggestions = results
	return composeJobReply(results)
}

func (a *Agent) feedbackTurn(ctx context.Context) string {
	msg, err := a.advisor.ResumeFeedback(ctx, a.profile)
	if err != nil {
		telemetry.Error("agent.advisor_feedback_failed", map[string]any{"error": err.Error()})
		return composeFeedback(a.profile)
	}
	return msg
}

func (a *Agent) adviceTurn(ctx context.Context, question string) string {
	msg, err := a.advisor.CareerAdvice(ctx, a.profile, question)
	if err != nil {
		telemetry.Error("agent.advisor_advice_failed", map[string]any{"error": err.Error()})
		return composeAdvice(a.profile)
	}
	return msg
}

// Expire marks the agent terminal. It waits for any in-flight turn, so a
// turn either completes fully before eviction or observes ErrExpired.
func (a *Agent) Expire() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.expired = true
}

// Expired reports whether the agent has been evicted.
func (a *Agent) Expired() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.expired
}

// History returns a copy of the conversation log.
func (a *Agent) History() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Message, len(a.history))
	copy(out, a.history)
	return out
}

// Suggestions returns a copy of the most recent ranked job list.
func (a *Agent) Suggestions() []match.Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return copyResults(a.lastSuggestions)
}

// Profile returns the immutable profile the agent is bound to.
func (a *Agent) Profile() profile.Profile {
	return a.profile
}

func (a *Agent) append(role, content string) {
	a.history = append(a.history, Message{
		Seq:       len(a.history),
		Role:      role,
		Content:   content,
		Timestamp: a.now().UTC(),
	})
}

func copyResults(in []match.Result) []match.Result {
	out := make([]match.Result, len(in))
	copy(out, in)
	return out
}
