// Package worker runs the periodic jobs of the background process.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airops/internal/logger"
	"github.com/adhocore/gronx"
)

type Job func(ctx context.Context) error

// CronRunner runs a job on a cron schedule. Runs never overlap: the next tick
// is computed after the previous run returns.
type CronRunner struct {
	name string
	expr string
	job  Job
	log  logger.Logger
	now  func() time.Time
}

func NewCronRunner(name, expr string, job Job, log logger.Logger) (*CronRunner, error) {
	if !gronx.New().IsValid(expr) {
		return nil, fmt.Errorf("invalid cron expression %q for %s", expr, name)
	}
	return &CronRunner{name: name, expr: expr, job: job, log: log, now: time.Now}, nil
}

// Next returns the first tick strictly after t.
func (r *CronRunner) Next(t time.Time) (time.Time, error) {
	return gronx.NextTickAfter(r.expr, t, false)
}

// Run blocks until ctx is done. A failed run is logged and the schedule
// continues.
func (r *CronRunner) Run(ctx context.Context) error {
	for {
		next, err := r.Next(r.now())
		if err != nil {
			return fmt.Errorf("schedule %s: %w", r.name, err)
		}
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		start := r.now()
		if err := r.job(ctx); err != nil {
			r.log.Error("scheduled job failed", "job", r.name, "error", err)
			continue
		}
		r.log.Debug("scheduled job finished", "job", r.name, "duration", r.now().Sub(start))
	}
}
