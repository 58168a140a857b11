package payment_notification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foodorder/internal/entities"
	"foodorder/pkg/logger"
	"github.com/IBM/sarama"
)

// redeliveryDelay пауза перед выходом из claim после временной ошибки,
// иначе повторная доставка того же сообщения крутится без остановки.
const redeliveryDelay = time.Second

type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
	redeliveryDelay          time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	return &Handler{
		service:                  service,
		log:                      log.With(logger.NewField("handler", "payment.notification")),
		messageProcessingTimeout: timeout,
		redeliveryDelay:          redeliveryDelay,
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
				h.log.Info("claim messages channel closed")
				return nil
			}

			if stop := h.messageProcessing(sess, message); stop {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка группы
			h.log.Info("session context done, exiting claim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если claim надо прервать без коммита сообщения:
// после отмены контекста или временной ошибки оно будет доставлено повторно.
// Коммитятся обработанные сообщения и те, повтор которых ничего не изменит.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	msgLog := h.log.With(
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	var event notificationEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		msgLog.Error("bad payment notification message", logger.NewField("error", err))
		sess.MarkMessage(message, "")
		return false
	}

	notification, err := event.toDomain()
	if err != nil {
		msgLog.Error("bad payment notification message", logger.NewField("error", err))
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = msgLog.With(
		logger.NewField("order_id", notification.OrderID),
		logger.NewField("transaction_status", notification.TransactionStatus),
	)

	order, err := h.service.Reconcile(ctx, notification)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			msgLog.Warn("payment notification processing interrupted, message will be redelivered",
				logger.NewField("error", err),
			)
			return true

		case errors.Is(err, entities.ErrOrderNotFound):
			msgLog.Error("payment notification for unknown order", logger.NewField("error", err))
			sess.MarkMessage(message, "")
			return false

		default:
			msgLog.Error("payment notification processing failed, message will be redelivered",
				logger.NewField("error", err),
			)
			h.pause(sess.Context())
			return true
		}
	}

	msgLog.Info("payment notification processed", logger.NewField("status", order.Status))
	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) pause(ctx context.Context) {
	if h.redeliveryDelay <= 0 {
		return
	}

	timer := time.NewTimer(h.redeliveryDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
