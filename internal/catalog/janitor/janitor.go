package janitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Pruner removes cart rows whose project no longer exists.
type Pruner interface {
	PruneDangling(ctx context.Context) (int64, error)
}

// Janitor periodically prunes dangling cart rows. Reads tolerate
// dangling references regardless; the janitor only bounds how long
// they live.
type Janitor struct {
	c      *cron.Cron
	pruner Pruner
}

// New builds a janitor on the given cron schedule (standard 5-field
// spec or @every syntax).
func New(pruner Pruner, schedule string) (*Janitor, error) {
	j := &Janitor{
		c:      cron.New(),
		pruner: pruner,
	}
	if _, err := j.c.AddFunc(schedule, j.runOnce); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Janitor) Start() {
	j.c.Start()
	slog.Info("cart janitor started")
}

// Stop halts scheduling; a run already in flight completes.
func (j *Janitor) Stop() {
	j.c.Stop()
}

func (j *Janitor) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := j.pruner.PruneDangling(ctx)
	if err != nil {
		slog.Error("cart janitor prune failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("cart janitor pruned dangling rows", "count", n)
	}
}

// RunOnce triggers a single prune outside the schedule.
func (j *Janitor) RunOnce() {
	j.runOnce()
}
