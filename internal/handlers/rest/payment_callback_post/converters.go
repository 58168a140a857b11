package payment_callback_post

import (
	"errors"
	"fmt"
	"strconv"

	"foodorder/internal/entities"
	"foodorder/internal/generated/dto"
)

func toDomain(req dto.PaymentNotification) (entities.PaymentNotification, error) {
	if req.OrderId == nil {
		return entities.PaymentNotification{}, errors.New("order_id is required")
	}

	orderID, err := strconv.ParseInt(*req.OrderId, 10, 64)
	if err != nil {
		return entities.PaymentNotification{}, fmt.Errorf("order_id %q is not a number", *req.OrderId)
	}

	return entities.PaymentNotification{
		OrderID:           orderID,
		TransactionStatus: value(req.TransactionStatus),
		FraudStatus:       value(req.FraudStatus),
		PaymentType:       value(req.PaymentType),
		StatusCode:        value(req.StatusCode),
		GrossAmount:       value(req.GrossAmount),
		SignatureKey:      value(req.SignatureKey),
	}, nil
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
