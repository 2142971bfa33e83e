package fulfillment

import (
	"context"
	"log/slog"

	"ticketera/internal/pkg/config"
	"ticketera/internal/pkg/errs"

	"github.com/go-co-op/gocron/v2"
)

// Sweeper expires abandoned PENDING orders; implemented by the order
// command service.
type Sweeper interface {
	ExpireStalePending(ctx context.Context) (int, error)
}

// Worker owns the background schedule: outbox dispatch on a short tick,
// stale-order sweep on a long one.
type Worker struct {
	scheduler  gocron.Scheduler
	dispatcher *Dispatcher
	sweeper    Sweeper
	cfg        config.WorkerConfig
}

func NewWorker(dispatcher *Dispatcher, sweeper Sweeper, cfg config.WorkerConfig) (*Worker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "failed to create scheduler")
	}
	return &Worker{
		scheduler:  scheduler,
		dispatcher: dispatcher,
		sweeper:    sweeper,
		cfg:        cfg,
	}, nil
}

func (w *Worker) Start(ctx context.Context) error {
	_, err := w.scheduler.NewJob(
		gocron.DurationJob(w.cfg.DispatchInterval),
		gocron.NewTask(func() {
			if _, err := w.dispatcher.RunOnce(ctx); err != nil {
				slog.Error("outbox dispatch tick failed", "error", err.Error())
			}
		}),
	)
	if err != nil {
		return errs.Wrap(err, "failed to schedule outbox dispatch")
	}

	_, err = w.scheduler.NewJob(
		gocron.DurationJob(w.cfg.SweepInterval),
		gocron.NewTask(func() {
			expired, err := w.sweeper.ExpireStalePending(ctx)
			if err != nil {
				slog.Error("stale order sweep failed", "error", err.Error())
				return
			}
			if expired > 0 {
				slog.Info("expired stale pending orders", "count", expired)
			}
		}),
	)
	if err != nil {
		return errs.Wrap(err, "failed to schedule stale order sweep")
	}

	w.scheduler.Start()
	slog.Info("fulfillment worker started",
		"dispatch_interval", w.cfg.DispatchInterval.String(),
		"sweep_interval", w.cfg.SweepInterval.String())
	return nil
}

func (w *Worker) Stop() error {
	return w.scheduler.Shutdown()
}
