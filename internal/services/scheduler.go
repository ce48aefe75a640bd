package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/logger"
)

// Scheduler is the optional in-process trigger for deployments without a
// platform cron. It invokes the watchdog on a cron cadence; invocations may
// overlap a slow run, which the watchdog's conditional status update
// tolerates.
type Scheduler struct {
	cron     *cron.Cron
	watchdog *WatchdogService
	log      *logger.Logger
}

func NewScheduler(watchdog *WatchdogService, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		watchdog: watchdog,
		log:      log,
	}
}

// Start registers the watchdog on the given cron spec and starts the runner.
// An empty spec disables the in-process trigger.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() {
		summary, err := s.watchdog.Run(context.Background(), time.Now())
		if err != nil {
			s.log.Errorf("scheduled watchdog run failed: %s", err)
			return
		}
		if summary.Due > 0 {
			s.log.Infof("watchdog run: %d due, %d notified", summary.Due, summary.Processed)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("in-process schedule trigger running with spec %q", spec)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
