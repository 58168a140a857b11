package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/entities"
)

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

// Authenticate находит пользователя по bearer токену вида "<id>|<plain>".
// В базе хранится только sha256 от plain части.
func (s *User) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	plain := token
	if _, rest, found := strings.Cut(token, "|"); found {
		plain = rest
	}
	if strings.TrimSpace(plain) == "" {
		return nil, ErrUnauthenticated
	}

	sum := sha256.Sum256([]byte(plain))
	user, err := s.repository.GetByTokenHash(ctx, hex.EncodeToString(sum[:]))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	return user, nil
}
