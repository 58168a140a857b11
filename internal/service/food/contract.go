//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=food_test
package food

import (
	"context"

	"foodorder/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Food, error)
	List(ctx context.Context, filter entities.FoodFilter) (*entities.FoodPage, error)
}
