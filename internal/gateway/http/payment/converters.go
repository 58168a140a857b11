package payment

import (
	"fmt"
	"strconv"

	"foodorder/internal/entities"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

func toSnapRequest(req entities.PaymentSessionRequest) *snap.Request {
	payments := make([]snap.SnapPaymentType, 0, len(req.EnabledPayments))
	for _, p := range req.EnabledPayments {
		payments = append(payments, snap.SnapPaymentType(p))
	}

	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  strconv.FormatInt(req.OrderID, 10),
			GrossAmt: req.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.Customer.Name,
			Email: req.Customer.Email,
		},
		EnabledPayments: payments,
	}
}

func toPaymentStatus(resp *coreapi.TransactionStatusResponse) (*entities.PaymentStatus, error) {
	orderID, err := strconv.ParseInt(resp.OrderID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse order_id %q: %w", resp.OrderID, err)
	}

	return &entities.PaymentStatus{
		OrderID:           orderID,
		TransactionStatus: resp.TransactionStatus,
		FraudStatus:       resp.FraudStatus,
		PaymentType:       resp.PaymentType,
		StatusCode:        resp.StatusCode,
		GrossAmount:       resp.GrossAmount,
		SignatureKey:      resp.SignatureKey,
	}, nil
}

// fromSDKError переводит ошибку SDK в APIError или сетевую ошибку, которую видит retrier.
func fromSDKError(err *midtrans.Error, messages []string) error {
	if err.StatusCode == 0 && err.RawError != nil {
		return err.RawError
	}

	if len(messages) == 0 && err.Message != "" {
		messages = []string{err.Message}
	}

	return &APIError{
		StatusCode: err.StatusCode,
		Messages:   messages,
	}
}
