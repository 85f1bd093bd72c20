package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

// job is a periodic maintenance task. A non-positive interval disables it.
type job struct {
	name  string
	every time.Duration
	run   func(ctx context.Context) error
}

// runScheduler runs each enabled job on its own ticker until ctx is done.
// Job errors are logged; they never stop the scheduler.
func runScheduler(ctx context.Context, log *slog.Logger, jobs []job) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, j := range jobs {
		if j.every <= 0 {
			log.Info("scheduled job disabled", slog.String("job", j.name))
			continue
		}
		g.Go(func() error {
			runEvery(gctx, log, j)
			return nil
		})
	}

	return g.Wait()
}

func runEvery(ctx context.Context, log *slog.Logger, j job) {
	log = log.With("job", j.name)
	log.Info("scheduled job started", slog.Duration("every", j.every))

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			start := time.Now()
			err := j.run(ctx)
			switch {
			case err == nil:
				log.Info("scheduled job finished", slog.Duration("duration", time.Since(start)))
			case errors.Is(err, domain.ErrConflict):
				log.Info("scheduled job skipped, previous run still in progress")
			case ctx.Err() != nil:
				return
			default:
				log.Error("scheduled job failed", slog.String("error", err.Error()))
			}
		}
	}
}
