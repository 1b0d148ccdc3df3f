package agent

import (
	"context"

	"jobhunter-backend/internal/profile"
)

// Advisor composes feedback and advice replies. A remote implementation
// may be plugged in; StaticAdvisor is the deterministic local default, so
// a collaborator outage can only ever degrade wording, never a turn.
type Advisor interface {
	ResumeFeedback(ctx context.Context, p profile.Profile) (string, error)
	CareerAdvice(ctx context.Context, p profile.Profile, question string) (string, error)
}

// StaticAdvisor composes replies locally from the profile.
type StaticAdvisor struct{}

func (StaticAdvisor) ResumeFeedback(ctx context.Context, p profile.Profile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return composeFeedback(p), nil
}

func (StaticAdvisor) CareerAdvice(ctx context.Context, p profile.Profile, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_ = question
	return composeAdvice(p), nil
}
