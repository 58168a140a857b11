package checkout

import (
	"errors"
	"strings"
)

var (
	ErrValidation     = errors.New("invalid input")
	ErrPaymentGateway = errors.New("payment gateway error")
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationError содержит все невалидные поля запроса, а не только первое.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PaymentGatewayError отказ или недоступность шлюза. Message() - текст ошибки шлюза для клиента.
type PaymentGatewayError struct {
	OrderID int64
	Err     error
}

func (e *PaymentGatewayError) Error() string {
	return ErrPaymentGateway.Error() + ": " + e.Err.Error()
}

func (e *PaymentGatewayError) Message() string {
	return e.Err.Error()
}

func (e *PaymentGatewayError) Unwrap() []error {
	return []error{ErrPaymentGateway, e.Err}
}
