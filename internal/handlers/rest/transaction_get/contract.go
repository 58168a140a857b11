//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transaction_get_test
package transaction_get

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
	GetOrder(ctx context.Context, userID int64, orderID int64) (*entities.OrderDetails, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) (*entities.OrderPage, error)
}
