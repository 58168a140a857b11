//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=food_get_test
package food_get

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
	GetFood(ctx context.Context, id int64) (*entities.Food, error)
	ListFoods(ctx context.Context, filter entities.FoodFilter) (*entities.FoodPage, error)
}
