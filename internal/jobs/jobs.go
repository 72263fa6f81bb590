// Package jobs schedules and runs the periodic maintenance jobs.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/goran-ethernal/ReputationIndexor/internal/db"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/internal/sweep"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
	"golang.org/x/sync/errgroup"
)

// Sweeper is the part of sweep.Sweeper the jobs run.
type Sweeper interface {
	Run(ctx context.Context) (*sweep.Result, error)
	RequeueUnprocessed(ctx context.Context) (*sweep.Result, error)
}

var _ Sweeper = (*sweep.Sweeper)(nil)

// Consumer drains the periodic-jobs queue.
type Consumer struct {
	broker      queue.Broker
	maintenance db.Maintenance
	sweeper     Sweeper
	log         *logger.Logger
}

func NewConsumer(broker queue.Broker, maintenance db.Maintenance, sweeper Sweeper, log *logger.Logger) *Consumer {
	return &Consumer{
		broker:      broker,
		maintenance: maintenance,
		sweeper:     sweeper,
		log:         log,
	}
}

// Run consumes until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("consuming periodic jobs")
	return c.broker.Consume(ctx, queue.PeriodicJobs, queue.JSONHandler(c.Handle))
}

// Handle dispatches the job by type. Unknown types are poison.
func (c *Consumer) Handle(ctx context.Context, job queue.PeriodicJob) error {
	start := time.Now()

	var err error
	switch job.Type {
	case itypes.JobDBMaintenance:
		err = c.maintenance.RunMaintenance(ctx)
	case itypes.JobRequeueUnprocessed:
		_, err = c.sweeper.RequeueUnprocessed(ctx)
	case itypes.JobBackfillSweep:
		_, err = c.sweeper.Run(ctx)
	default:
		return fmt.Errorf("%w: unknown job type %q", queue.ErrPoison, job.Type)
	}

	if err != nil {
		JobRunInc(job.Type, "failed")
		return fmt.Errorf("%s job scheduled at %s failed: %w", job.Type, job.ScheduledAt.Format(time.RFC3339), err)
	}

	JobRunInc(job.Type, "ok")
	c.log.Infof("%s job completed in %s", job.Type, time.Since(start))
	return nil
}

// Producer enqueues every configured job on its interval.
type Producer struct {
	broker queue.Broker
	jobs   []config.PeriodicJobConfig
	log    *logger.Logger
	now    func() time.Time
}

func NewProducer(broker queue.Broker, jobs []config.PeriodicJobConfig, log *logger.Logger) *Producer {
	return &Producer{
		broker: broker,
		jobs:   jobs,
		log:    log,
		now:    time.Now,
	}
}

// Run ticks until ctx is cancelled. The first run of a job is one interval after start.
func (p *Producer) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, job := range p.jobs {
		jobType := itypes.JobType(job.Type)
		if !jobType.IsValid() || job.Interval.Duration <= 0 {
			p.log.Warnf("skipping periodic job %q with interval %s", job.Type, job.Interval)
			continue
		}

		interval := job.Interval.Duration
		g.Go(func() error {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := p.Enqueue(ctx, jobType); err != nil {
						p.log.Errorf("failed to schedule %s job: %v", jobType, err)
					}
				}
			}
		})
	}

	return g.Wait()
}

// Enqueue schedules one run of jobType now.
func (p *Producer) Enqueue(ctx context.Context, jobType itypes.JobType) error {
	if !jobType.IsValid() {
		return fmt.Errorf("unknown job type %q", jobType)
	}

	id, err := p.broker.Enqueue(ctx, queue.PeriodicJobs, queue.PeriodicJob{Type: jobType, ScheduledAt: p.now().UTC()})
	if err != nil {
		return err
	}

	p.log.Debugf("scheduled %s job %s", jobType, id)
	return nil
}
