package delivery_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"console/pkg/logger"

	"github.com/IBM/sarama"
)

// Handler reacts to delivery status changes published by the backend: the
// active deliveries are reloaded ahead of the next poll, and the tracked
// delivery is refreshed when it is the one that changed.
type Handler struct {
	log                      handlerLogger
	live                     LiveData
	tracker                  Tracker
	tenant                   TenantSource
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, live LiveData, tracker Tracker, tenant TenantSource, timeout time.Duration) *Handler {
	return &Handler{
		log:                      log.With(),
		live:                     live,
		tracker:                  tracker,
		tenant:                   tenant,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if h.messageProcessing(sess, message) {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("delivery.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing returns true when ConsumeClaim must stop; the message is
// then left unmarked and is redelivered.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	if event.TenantID != "" && event.TenantID != h.tenant.TenantID() {
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("delivery.status.changed processing")

	err = h.live.ReloadActives(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler context cancelled, message will be reprocessed")
			return true
		}
		msgLog.With(
			logger.NewField("error", err),
		).Warn("delivery.status.changed handler failed to reload deliveries")
	}

	if event.DeliveryID != "" && event.DeliveryID == h.tracker.ID() {
		_, err = h.tracker.Refresh(ctx)
		if err != nil {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler failed to refresh track")
		}
	}

	sess.MarkMessage(message, "")
	return false
}
