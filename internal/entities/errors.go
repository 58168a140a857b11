package entities

import "errors"

// Ошибки хранилищ, общие для нескольких сервисов.
var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrFoodNotFound         = errors.New("food not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrPaymentURLAlreadySet = errors.New("payment url already set")
)

// ErrPaymentTransactionNotFound шлюз не знает транзакцию (покупатель не открывал страницу оплаты).
var ErrPaymentTransactionNotFound = errors.New("payment transaction not found")
