package entities

import "time"

// Order это транзакция покупки одной позиции меню.
type Order struct {
	ID         int64
	UserID     int64
	FoodID     int64
	Quantity   int
	Total      int64
	Status     OrderStatusType
	PaymentURL *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "PENDING"
	OrderSuccess   OrderStatusType = "SUCCESS"
	OrderCancelled OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderSuccess, OrderCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal - из SUCCESS и CANCELLED переходов нет.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderSuccess || s == OrderCancelled
}

func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	if !next.IsValid() || s == next {
		return false
	}
	return s == OrderPending
}

// Статусы платежного шлюза.
const (
	PaymentStatusPending    = "pending"
	PaymentStatusSettlement = "settlement"
)

// OrderStatusFromPayment: pending -> PENDING, settlement -> SUCCESS, все остальное -> CANCELLED.
func OrderStatusFromPayment(transactionStatus string) OrderStatusType {
	switch transactionStatus {
	case PaymentStatusPending:
		return OrderPending
	case PaymentStatusSettlement:
		return OrderSuccess
	default:
		return OrderCancelled
	}
}

type OrderModify struct {
	ID         *int64
	UserID     *int64
	FoodID     *int64
	Quantity   *int
	Total      *int64
	Status     *OrderStatusType
	PaymentURL *string
}

// OrderDetails заказ вместе с позицией меню и покупателем.
type OrderDetails struct {
	Order
	Food Food
	User User
}

type OrderFilter struct {
	UserID int64
	FoodID *int64
	Status *OrderStatusType
	Limit  int
	Page   int
}

type OrderPage struct {
	Items   []OrderDetails
	Page    int
	Limit   int
	HasMore bool
}

// OrderStatusChange событие о смене статуса заказа.
type OrderStatusChange struct {
	OrderID        int64
	Status         OrderStatusType
	PreviousStatus OrderStatusType
	OccurredAt     time.Time
}
