package user

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/entities"
	"foodorder/internal/repository"
	"github.com/jackc/pgx/v5"
)

const userColumns = `u.id, u.name, u.email, u.address, u.house_number, u.phone_number, u.city,
	u.profile_photo_path, u.created_at, u.updated_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users u
		WHERE u.id = $1`

	userDB, err := scanUser(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(userDB), nil
}

// GetByTokenHash находит владельца токена и отмечает время последнего использования.
func (r *Repository) GetByTokenHash(ctx context.Context, tokenHash string) (*entities.User, error) {
	query := `
		WITH touched AS (
			UPDATE personal_access_tokens
			SET last_used_at = NOW()
			WHERE token = $1
			RETURNING user_id
		)
		SELECT ` + userColumns + `
		FROM users u
		JOIN touched t ON t.user_id = u.id`

	userDB, err := scanUser(r.querier.QueryRow(ctx, query, tokenHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get by token error: %w", err)
	}

	return ToDomain(userDB), nil
}

func scanUser(row pgx.Row) (*UserDB, error) {
	var u UserDB
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Address,
		&u.HouseNumber,
		&u.PhoneNumber,
		&u.City,
		&u.ProfilePhotoPath,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
