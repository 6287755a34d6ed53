package scheduler

import (
	"context"
	"fmt"
	"log"

	"cfbPickem/scheduler/scheduler_jobs"
	"cfbPickem/services/common"

	"github.com/robfig/cron/v3"
)

// Schedules are cron expressions with a seconds field. An empty expression
// disables the job.
type Schedules struct {
	LineRefresh string
	GameEnd     string
}

// SetupCron registers the jobs and starts the scheduler. Each job skips a
// tick while its previous run is still going.
func SetupCron(ctx context.Context, schedules Schedules, d scheduler_jobs.Deps) (*cron.Cron, error) {
	cronService := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	jobs := []struct {
		name     string
		schedule string
		run      func(context.Context, scheduler_jobs.Deps) error
	}{
		{"CheckLines", schedules.LineRefresh, scheduler_jobs.CheckLines},
		{"CheckGameEnd", schedules.GameEnd, scheduler_jobs.CheckGameEnd},
	}

	for _, job := range jobs {
		if job.schedule == "" {
			log.Printf("%s disabled", job.name)
			continue
		}
		job := job
		_, err := cronService.AddFunc(job.schedule, func() {
			if err := job.run(ctx, d); err != nil {
				common.SendError(ctx, d.Store, "cron "+job.name, err)
			}
		})
		if err != nil {
			common.SendError(ctx, d.Store, "CRON ERR", err)
			return nil, fmt.Errorf("error scheduling %s: %w", job.name, err)
		}
	}

	cronService.Start()
	return cronService, nil
}
