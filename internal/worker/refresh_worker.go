package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/events"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/service"
)

// StartRefreshWorker subscribes the report cache warmer to dataset refresh
// events, so every newly stored dataset has its standard report set computed
// before the first reader asks for it.
func StartRefreshWorker(dispatcher events.Dispatcher, reports *service.ReportService, logger *zap.Logger) {
	if dispatcher == nil || reports == nil {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	dispatcher.Subscribe(events.EventDatasetRefreshed, func(ctx context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.DatasetRefreshedPayload)
		if ok {
			logger.Info("warming report cache for refreshed dataset",
				zap.String("version", payload.Version),
				zap.Int("tickets", payload.TicketCount),
			)
		}
		reports.WarmCache(ctx)
		return nil
	})
}
