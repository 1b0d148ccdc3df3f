package agent

import (
	"time"

	"jobhunter-backend/internal/intent"
	"jobhunter-backend/internal/match"
)

// Role values for history messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a session's append-only conversation log.
// Seq increases monotonically per session; entries are never mutated
// after append.
type Message struct {
	Seq       int       `json:"seq"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TurnResult is the outcome of one chat turn.
type TurnResult struct {
	Message       string
	Intent        intent.Intent
	Suggestions   []match.Result
	RequiresInput bool
}
