package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/entities"
	"foodorder/pkg/logger"
)

type Payment struct {
	repository OrderRepository
	publisher  EventPublisher
	gateway    StatusGateway
	verifier   SignatureVerifier
	txManager  TxManager
	log        Logger
	now        func() time.Time
}

// New собирает сервис сверки платежей. verifier == nil отключает проверку подписи уведомлений.
func New(
	repository OrderRepository,
	publisher EventPublisher,
	gateway StatusGateway,
	verifier SignatureVerifier,
	txManager TxManager,
	log Logger,
) *Payment {
	return &Payment{
		repository: repository,
		publisher:  publisher,
		gateway:    gateway,
		verifier:   verifier,
		txManager:  txManager,
		log:        log,
		now:        time.Now,
	}
}

type SyncResult struct {
	Checked    int
	Reconciled int
	Failed     int
}

// HandleNotification проверяет подлинность уведомления шлюза и применяет его к заказу.
func (p *Payment) HandleNotification(ctx context.Context, notification entities.PaymentNotification) (*entities.Order, error) {
	if notification.OrderID <= 0 {
		ReconciliationsTotal.WithLabelValues(sourceWebhook, outcomeRejected).Inc()
		return nil, fmt.Errorf("%w: order id must be positive", ErrInvalidNotification)
	}

	if p.verifier != nil && !p.verifier.VerifySignature(notification) {
		ReconciliationsTotal.WithLabelValues(sourceWebhook, outcomeRejected).Inc()
		return nil, ErrInvalidSignature
	}

	return p.reconcile(ctx, sourceWebhook, notification)
}

// Reconcile переводит заказ в статус, соответствующий статусу транзакции шлюза.
// Повтор того же статуса ничего не меняет, из SUCCESS и CANCELLED переходов нет.
// Вызывается воркером Kafka для уведомлений, уже прошедших проверку на входе.
func (p *Payment) Reconcile(ctx context.Context, notification entities.PaymentNotification) (*entities.Order, error) {
	return p.reconcile(ctx, sourceRelay, notification)
}

func (p *Payment) reconcile(ctx context.Context, source string, notification entities.PaymentNotification) (*entities.Order, error) {
	next := entities.OrderStatusFromPayment(notification.TransactionStatus)
	fields := []logger.Field{
		logger.NewField("order_id", notification.OrderID),
		logger.NewField("transaction_status", notification.TransactionStatus),
		logger.NewField("fraud_status", notification.FraudStatus),
		logger.NewField("payment_type", notification.PaymentType),
		logger.NewField("source", source),
	}

	var (
		result  *entities.Order
		change  *entities.OrderStatusChange
		outcome string
	)

	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := p.repository.GetByIDForUpdate(ctx, notification.OrderID)
		if err != nil {
			return fmt.Errorf("get order for update: %w", err)
		}

		switch {
		case order.Status == next:
			outcome = outcomeNoop
			result = order
			return nil
		case !order.Status.CanTransitionTo(next):
			outcome = outcomeIgnored
			result = order
			return nil
		}

		updated, err := p.repository.UpdateStatus(ctx, order.ID, next)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		outcome = outcomeApplied
		result = updated
		change = &entities.OrderStatusChange{
			OrderID:        updated.ID,
			Status:         updated.Status,
			PreviousStatus: order.Status,
			OccurredAt:     p.now().UTC(),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			ReconciliationsTotal.WithLabelValues(source, outcomeNotFound).Inc()
			p.log.Error("Payment notification for unknown order", fields...)
			return nil, err
		}
		ReconciliationsTotal.WithLabelValues(source, outcomeFailed).Inc()
		return nil, fmt.Errorf("reconcile order %d: %w", notification.OrderID, err)
	}

	ReconciliationsTotal.WithLabelValues(source, outcome).Inc()

	switch outcome {
	case outcomeIgnored:
		p.log.Warn("Ignoring status change of finalized order",
			append(fields, logger.NewField("current_status", result.Status))...,
		)
	case outcomeApplied:
		p.log.Info("Order status reconciled",
			append(fields,
				logger.NewField("previous_status", change.PreviousStatus),
				logger.NewField("status", change.Status),
			)...,
		)
		// событие публикуем только после коммита, ошибка публикации не откатывает сверку
		if err := p.publisher.PublishOrderStatusChanged(ctx, *change); err != nil {
			p.log.Error("Failed to publish order status change",
				append(fields, logger.NewField("error", err))...,
			)
		}
	}

	return result, nil
}

// SyncPendingPayments опрашивает шлюз по зависшим PENDING заказам, для которых мог потеряться webhook.
// Ошибка по одному заказу не прерывает обход остальных.
func (p *Payment) SyncPendingPayments(ctx context.Context, olderThan time.Duration, limit int) (*SyncResult, error) {
	orders, err := p.repository.ListPendingWithPaymentURL(ctx, p.now().Add(-olderThan), limit)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	result := &SyncResult{}
	for _, order := range orders {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Checked++
		StatusSyncChecked.Inc()

		status, err := p.gateway.GetPaymentStatus(ctx, order.ID)
		if err != nil {
			if errors.Is(err, entities.ErrPaymentTransactionNotFound) {
				// покупатель еще не выбрал способ оплаты
				continue
			}
			result.Failed++
			p.log.Warn("Failed to get payment status",
				logger.NewField("order_id", order.ID),
				logger.NewField("error", err),
			)
			continue
		}

		updated, err := p.reconcile(ctx, sourceStatusSync, status.Notification())
		if err != nil {
			result.Failed++
			p.log.Warn("Failed to reconcile pending order",
				logger.NewField("order_id", order.ID),
				logger.NewField("error", err),
			)
			continue
		}
		if updated.Status != order.Status {
			result.Reconciled++
		}
	}

	return result, nil
}
