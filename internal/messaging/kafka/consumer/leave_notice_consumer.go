package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ray0128/sunday-for-rayinhair/internal/events"
)

// ConsumeLeaveStatusChanges turns leave status events into notification
// intents. Delivery to a messaging provider is best-effort downstream work;
// a failed notice is logged and never replays the leave mutation, so every
// message is committed once decoded.
func ConsumeLeaveStatusChanges(
	ctx context.Context,
	reader *kafkago.Reader,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_notice")
	log.Info("leave notice consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave notice consumer stopped")
				return
			}
			log.Error("fetch leave status message failed", zap.Error(err))
			continue
		}

		var event events.LeaveStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave status event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		log.Info("leave notice",
			zap.String("event_type", event.EventType),
			zap.String("leave_id", event.LeaveID),
			zap.String("store_id", event.StoreID),
			zap.String("user_id", event.UserID),
			zap.String("date", event.Date),
			zap.String("status", event.Status),
			zap.Int("affected", len(event.AffectedIDs)),
		)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave status message failed", zap.Error(err))
		}
	}
}
