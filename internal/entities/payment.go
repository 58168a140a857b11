package entities

// PaymentNotification асинхронное уведомление платежного шлюза о транзакции.
type PaymentNotification struct {
	OrderID           int64
	TransactionStatus string
	FraudStatus       string
	PaymentType       string
	StatusCode        string
	GrossAmount       string
	SignatureKey      string
}

type PaymentCustomer struct {
	Name  string
	Email string
}

type PaymentSessionRequest struct {
	OrderID         int64
	GrossAmount     int64
	Customer        PaymentCustomer
	EnabledPayments []string
}

type PaymentSession struct {
	Token       string
	RedirectURL string
}

// PaymentStatus ответ шлюза на запрос статуса транзакции.
type PaymentStatus struct {
	OrderID           int64
	TransactionStatus string
	FraudStatus       string
	PaymentType       string
	StatusCode        string
	GrossAmount       string
	SignatureKey      string
}

func (p PaymentStatus) Notification() PaymentNotification {
	return PaymentNotification(p)
}

type CheckoutRequest struct {
	FoodID   *int64
	Quantity *int
	Total    *int64
	Status   *string
}
