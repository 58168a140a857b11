package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrInvalidPage    = errors.New("invalid pagination")
)
