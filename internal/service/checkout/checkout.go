package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/entities"
	"foodorder/pkg/logger"
)

type Options struct {
	EnabledPayments []string
	GatewayTimeout  time.Duration
	// VerifyTotal сверяет total с ценой из каталога, по умолчанию total берется как есть
	VerifyTotal bool
}

type Checkout struct {
	orderRepository OrderRepository
	foodRepository  FoodRepository
	userRepository  UserRepository
	gateway         PaymentGateway
	log             Logger
	options         Options
}

func New(
	orderRepository OrderRepository,
	foodRepository FoodRepository,
	userRepository UserRepository,
	gateway PaymentGateway,
	log Logger,
	options Options,
) *Checkout {
	return &Checkout{
		orderRepository: orderRepository,
		foodRepository:  foodRepository,
		userRepository:  userRepository,
		gateway:         gateway,
		log:             log,
		options:         options,
	}
}

// Checkout создает заказ в PENDING, открывает сессию оплаты и сохраняет ссылку на нее.
// При отказе шлюза заказ остается в базе без payment_url.
func (c *Checkout) Checkout(ctx context.Context, userID int64, req entities.CheckoutRequest) (*entities.OrderDetails, error) {
	if err := c.validate(ctx, req); err != nil {
		return nil, err
	}

	buyer, err := c.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get buyer: %w", err)
	}

	// начальный статус всегда PENDING, присланный клиентом status только обязателен
	pending := entities.OrderPending
	order, err := c.orderRepository.Create(ctx, entities.OrderModify{
		UserID:   &userID,
		FoodID:   req.FoodID,
		Quantity: req.Quantity,
		Total:    req.Total,
		Status:   &pending,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	orderLog := []logger.Field{
		logger.NewField("order_id", order.ID),
		logger.NewField("user_id", userID),
		logger.NewField("food_id", order.FoodID),
	}

	session, err := c.createPaymentSession(ctx, order, buyer)
	if err != nil {
		c.log.Warn("Payment session failed, order kept without payment url",
			append(orderLog, logger.NewField("error", err))...,
		)
		return nil, &PaymentGatewayError{OrderID: order.ID, Err: err}
	}

	if _, err := c.orderRepository.SetPaymentURL(ctx, order.ID, session.RedirectURL); err != nil {
		return nil, fmt.Errorf("set payment url: %w", err)
	}

	details, err := c.orderRepository.FindWithAssociations(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("find order with associations: %w", err)
	}

	c.log.Info("Checkout completed", orderLog...)
	return details, nil
}

func (c *Checkout) validate(ctx context.Context, req entities.CheckoutRequest) error {
	v := &validator{}
	validateShape(v, req)

	if req.FoodID == nil {
		return v.err()
	}

	food, err := c.foodRepository.GetByID(ctx, *req.FoodID)
	switch {
	case errors.Is(err, entities.ErrFoodNotFound):
		v.add("food_id", msgFoodNotFound)
	case err != nil:
		return fmt.Errorf("get food: %w", err)
	case c.options.VerifyTotal && req.Quantity != nil && req.Total != nil &&
		*req.Quantity > 0 && *req.Total > 0 && !isTotalConsistent(food, *req.Quantity, *req.Total):
		v.add("total", msgTotalInvalid)
	}

	return v.err()
}

func (c *Checkout) createPaymentSession(ctx context.Context, order *entities.Order, buyer *entities.User) (*entities.PaymentSession, error) {
	if c.options.GatewayTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.GatewayTimeout)
		defer cancel()
	}

	return c.gateway.CreatePaymentSession(ctx, entities.PaymentSessionRequest{
		OrderID:     order.ID,
		GrossAmount: order.Total,
		Customer: entities.PaymentCustomer{
			Name:  buyer.Name,
			Email: buyer.Email,
		},
		EnabledPayments: c.options.EnabledPayments,
	})
}
