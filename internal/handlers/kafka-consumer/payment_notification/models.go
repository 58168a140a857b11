package payment_notification

import (
	"encoding/json"
	"fmt"
	"strconv"

	"foodorder/internal/entities"
)

// notificationEvent тот же JSON, что шлюз шлет в webhook. order_id бывает и строкой и числом.
type notificationEvent struct {
	OrderID           json.Number `json:"order_id"`
	TransactionStatus string      `json:"transaction_status"`
	FraudStatus       string      `json:"fraud_status"`
	PaymentType       string      `json:"payment_type"`
	StatusCode        string      `json:"status_code"`
	GrossAmount       string      `json:"gross_amount"`
	SignatureKey      string      `json:"signature_key"`
}

func (e notificationEvent) toDomain() (entities.PaymentNotification, error) {
	orderID, err := strconv.ParseInt(e.OrderID.String(), 10, 64)
	if err != nil || orderID <= 0 {
		return entities.PaymentNotification{}, fmt.Errorf("invalid order_id %q", e.OrderID.String())
	}

	return entities.PaymentNotification{
		OrderID:           orderID,
		TransactionStatus: e.TransactionStatus,
		FraudStatus:       e.FraudStatus,
		PaymentType:       e.PaymentType,
		StatusCode:        e.StatusCode,
		GrossAmount:       e.GrossAmount,
		SignatureKey:      e.SignatureKey,
	}, nil
}
