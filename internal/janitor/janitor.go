// Package janitor wires up the cron job that periodically sweeps idle
// sessions out of the registry.
package janitor

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"jobhunter-backend/internal/session"
	"jobhunter-backend/internal/shared/telemetry"
)

// Janitor wraps robfig/cron and manages the eviction loop. It runs
// independently of turn processing; sweeps that race an in-flight turn
// wait on that session's lock inside the registry.
type Janitor struct {
	cron     *cron.Cron
	registry *session.Registry
	spec     string
}

// New creates a Janitor sweeping at the given interval.
func New(registry *session.Registry, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		cron:     cron.New(),
		registry: registry,
		spec:     fmt.Sprintf("@every %s", interval),
	}
}

// Start registers the sweep job and starts the scheduler.
func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.sweep)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	j.cron.Start()
	telemetry.Info("janitor.started", map[string]any{"spec": j.spec})
	return nil
}

// Stop gracefully shuts down the scheduler.
func (j *Janitor) Stop() {
	j.cron.Stop()
	telemetry.Info("janitor.stopped", nil)
}

func (j *Janitor) sweep() {
	if evicted := j.registry.Sweep(); evicted > 0 {
		telemetry.Info("janitor.sweep", map[string]any{
			"evicted": evicted,
			"live":    j.registry.Len(),
		})
	}
}
