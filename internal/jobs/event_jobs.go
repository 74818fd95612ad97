package jobs

import (
	"context"
	"time"

	"volunteerhub-backend/internal/logger"
)

// CompletePastEvents moves published events whose window has closed to
// COMPLETED so attendance and history stabilize without manual action.
func (jr *JobRunner) CompletePastEvents() {
	jr.runWithRecovery("complete-past-events", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		count, err := jr.store.EventRepository.CompletePastEvents(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to complete past events", "error", err)
			return
		}
		logger.Info("Completed past events", "count", count)
	})
}
