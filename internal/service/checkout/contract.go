//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"

	"foodorder/internal/entities"
	"foodorder/pkg/logger"
)

type OrderRepository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	SetPaymentURL(ctx context.Context, id int64, paymentURL string) (*entities.Order, error)
	FindWithAssociations(ctx context.Context, id int64) (*entities.OrderDetails, error)
}

type FoodRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Food, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

type PaymentGateway interface {
	CreatePaymentSession(ctx context.Context, req entities.PaymentSessionRequest) (*entities.PaymentSession, error)
}

type Logger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
