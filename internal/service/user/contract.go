//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"foodorder/internal/entities"
)

type Repository interface {
	GetByTokenHash(ctx context.Context, tokenHash string) (*entities.User, error)
}
