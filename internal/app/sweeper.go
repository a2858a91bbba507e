package app

import (
	"context"
	"time"
)

// sweepExpiredLocks periodically removes lock rows whose expiry has passed.
// This is hygiene, not correctness: every read already treats expired rows as
// absent. Deletes are conditioned on the exact expiry value read, so a lock
// reacquired between the read and the delete survives.
func (app *Application) sweepExpiredLocks(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.sweepOnce(ctx)
		}
	}
}

func (app *Application) sweepOnce(ctx context.Context) {
	for {
		expired, err := app.lockRepo.GetExpired(ctx, time.Now(), sweepBatchSize)
		if err != nil {
			app.logger.Error(err.Error(), "component", "sweeper")
			return
		}

		if len(expired) == 0 {
			return
		}

		err = app.lockRepo.DeleteExact(ctx, expired)
		if err != nil {
			app.logger.Error(err.Error(), "component", "sweeper")
			return
		}

		app.logger.Debug("swept expired seat locks", "count", len(expired))

		if len(expired) < sweepBatchSize {
			return
		}
	}
}
