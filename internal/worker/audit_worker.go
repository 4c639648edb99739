// Package worker hosts in-process background subscribers.
package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/worker-directory/internal/events"
)

// StartAuditWorker subscribes an audit trail to worker lifecycle events.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	audit := logger.Named("audit")
	record := func(_ context.Context, e events.Event) error {
		audit.Info("worker lifecycle event",
			zap.String("event", string(e.Type)),
			zap.String("worker_id", e.WorkerID),
			zap.String("permission", string(e.Permission)),
			zap.Time("at", e.Timestamp),
		)
		return nil
	}

	dispatcher.Subscribe(events.EventWorkerCreated, record)
	dispatcher.Subscribe(events.EventWorkerUpdated, record)
	dispatcher.Subscribe(events.EventWorkerDeleted, record)
}
