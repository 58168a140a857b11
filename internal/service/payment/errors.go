package payment

import "errors"

var (
	ErrInvalidNotification = errors.New("invalid payment notification")
	ErrInvalidSignature    = errors.New("invalid payment notification signature")
)
