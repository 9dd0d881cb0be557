package consumer

import (
	"context"
	"encoding/json"

	"go-timesheet/internal/events"
	"go-timesheet/internal/timesheet"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeTimesheetEvents drops the cached distinct-value lookups whenever a
// timesheet record changes, so the selection inputs refresh promptly instead
// of waiting out the cache TTL.
func ConsumeTimesheetEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	lookups *timesheet.LookupCache,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.timesheet")
	log.Info("timesheet event consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("timesheet event consumer stopped")
				return
			}
			log.Error("fetch timesheet event failed", zap.Error(err))
			continue
		}

		var event events.TimesheetEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode timesheet event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		lookups.Invalidate(ctx)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit timesheet event failed", zap.Error(err))
			continue
		}

		log.Info("lookup cache invalidated",
			zap.String("event_type", event.EventType),
			zap.String("timesheet_id", event.TimesheetID),
		)
	}
}
