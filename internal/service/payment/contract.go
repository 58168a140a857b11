//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"time"

	"foodorder/internal/entities"
	"foodorder/pkg/logger"
)

type OrderRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error)
	ListPendingWithPaymentURL(ctx context.Context, olderThan time.Time, limit int) ([]entities.Order, error)
}

type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event entities.OrderStatusChange) error
}

type StatusGateway interface {
	GetPaymentStatus(ctx context.Context, orderID int64) (*entities.PaymentStatus, error)
}

type SignatureVerifier interface {
	VerifySignature(notification entities.PaymentNotification) bool
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
