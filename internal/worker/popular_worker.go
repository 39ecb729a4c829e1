package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// refreshTimeout bounds one recomputation of the popular listings.
const refreshTimeout = 30 * time.Second

// PopularRefresher recomputes the popular listings and stores them in the cache.
type PopularRefresher interface {
	RefreshPopular(ctx context.Context) error
}

// PopularWorker keeps the popular classes and instructors warm on a cron schedule.
type PopularWorker struct {
	refresher PopularRefresher
	cron      *cron.Cron
	spec      string
	log       zerolog.Logger
}

// NewPopularWorker creates a PopularWorker running on the standard
// five-field cron spec.
func NewPopularWorker(refresher PopularRefresher, spec string, log zerolog.Logger) *PopularWorker {
	return &PopularWorker{
		refresher: refresher,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		spec:      spec,
		log:       log.With().Str("component", "popular_worker").Logger(),
	}
}

// Start refreshes once, then schedules the periodic job. The job stops
// when ctx is done or Stop is called.
func (w *PopularWorker) Start(ctx context.Context) error {
	if _, err := w.cron.AddFunc(w.spec, func() { w.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("schedule popular refresh %q: %w", w.spec, err)
	}

	w.RunOnce(ctx)
	w.cron.Start()
	w.log.Info().Str("schedule", w.spec).Msg("PopularWorker started")

	go func() {
		<-ctx.Done()
		w.Stop()
	}()
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (w *PopularWorker) Stop() {
	<-w.cron.Stop().Done()
}

// RunOnce performs a single refresh. Failures are logged and retried on the
// next tick.
func (w *PopularWorker) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	start := time.Now()
	if err := w.refresher.RefreshPopular(ctx); err != nil {
		w.log.Error().Err(err).Msg("popular refresh failed")
		return
	}
	w.log.Debug().Dur("took", time.Since(start)).Msg("popular listings refreshed")
}
