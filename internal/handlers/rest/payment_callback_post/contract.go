//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_callback_post_test
package payment_callback_post

import (
	"context"

	"foodorder/internal/entities"
	"foodorder/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	HandleNotification(ctx context.Context, notification entities.PaymentNotification) (*entities.Order, error)
}
