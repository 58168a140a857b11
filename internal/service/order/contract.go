//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"foodorder/internal/entities"
)

type Repository interface {
	FindWithAssociations(ctx context.Context, id int64) (*entities.OrderDetails, error)
	ListByUser(ctx context.Context, filter entities.OrderFilter) (*entities.OrderPage, error)
}
