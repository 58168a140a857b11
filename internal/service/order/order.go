package order

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/entities"
)

type Order struct {
	repository Repository
}

func New(repository Repository) *Order {
	return &Order{
		repository: repository,
	}
}

// GetOrder возвращает заказ вместе с едой и покупателем. Чужой заказ неотличим от несуществующего.
func (s *Order) GetOrder(ctx context.Context, userID, orderID int64) (*entities.OrderDetails, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	details, err := s.repository.FindWithAssociations(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if details.UserID != userID {
		return nil, fmt.Errorf("get order: %w", entities.ErrOrderNotFound)
	}

	return details, nil
}

func (s *Order) ListOrders(ctx context.Context, filter entities.OrderFilter) (*entities.OrderPage, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	limit, page, err := normalizePage(filter.Limit, filter.Page)
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Page = limit, page

	result, err := s.repository.ListByUser(ctx, filter)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("list orders timed out: %w", err)
		}
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return result, nil
}
