//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"foodorder/internal/entities"
	"foodorder/pkg/logger"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
