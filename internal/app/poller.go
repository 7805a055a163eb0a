package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/five82/daywall/internal/daycycle"
)

// StartScheduler runs sched in a background goroutine and returns a channel
// that receives its result exactly once. It returns immediately.
func StartScheduler(ctx context.Context, sched *daycycle.Scheduler, logger zerolog.Logger) <-chan error {
	errc := make(chan error, 1)
	go func() {
		err := sched.Run(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("scheduler stopped")
		}
		errc <- err
	}()
	return errc
}
