// Package parser defines the resume field-extraction collaborator. The
// actual inference lives in an upstream service; this package only carries
// its contract and a thin HTTP client.
package parser

import (
	"context"
	"errors"

	"jobhunter-backend/internal/profile"
)

// ErrNotConfigured is returned by Placeholder when no upstream parser is
// wired.
var ErrNotConfigured = errors.New("resume parser not configured")

// Client extracts structured resume fields from raw text.
type Client interface {
	ParseResume(ctx context.Context, text string) (profile.Profile, error)
}

// Placeholder stands in when no parser service is configured.
type Placeholder struct{}

func (Placeholder) ParseResume(ctx context.Context, text string) (profile.Profile, error) {
	_ = ctx
	_ = text
	return profile.Profile{}, ErrNotConfigured
}
