package food

import (
	"context"
	"fmt"

	"foodorder/internal/entities"
)

type Food struct {
	repository Repository
}

func New(repository Repository) *Food {
	return &Food{
		repository: repository,
	}
}

func (s *Food) GetFood(ctx context.Context, id int64) (*entities.Food, error) {
	if id <= 0 {
		return nil, ErrInvalidFoodID
	}

	food, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}

	return food, nil
}

func (s *Food) ListFoods(ctx context.Context, filter entities.FoodFilter) (*entities.FoodPage, error) {
	if filter.Limit < 0 || filter.Page < 0 {
		return nil, ErrInvalidPage
	}
	if !isValidRange(filter) {
		return nil, ErrInvalidRange
	}

	if filter.Limit == 0 {
		filter.Limit = DefaultLimit
	}
	filter.Limit = min(filter.Limit, MaxLimit)
	if filter.Page == 0 {
		filter.Page = 1
	}

	page, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	return page, nil
}
