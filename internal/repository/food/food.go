package food

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/entities"
	"foodorder/internal/repository"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const foodColumns = `id, name, description, ingredients, price, rate, types, picture_path, created_at, updated_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Food, error) {
	query := `SELECT ` + foodColumns + `
		FROM foods
		WHERE id = $1 AND deleted_at IS NULL`

	foodDB, err := scanFood(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrFoodNotFound
		}
		return nil, fmt.Errorf("unexpected food repository getbyid error: %w", err)
	}

	return ToDomain(foodDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.FoodFilter) (*entities.FoodPage, error) {
	builder := qb.
		Select(foodColumns).
		From("foods").
		Where("deleted_at IS NULL")

	// опциональные фильтры
	if filter.Name != nil {
		builder = builder.Where(sq.ILike{"name": "%" + *filter.Name + "%"})
	}
	if filter.Types != nil {
		builder = builder.Where(sq.ILike{"types": "%" + *filter.Types + "%"})
	}
	if filter.PriceFrom != nil {
		builder = builder.Where(sq.GtOrEq{"price": *filter.PriceFrom})
	}
	if filter.PriceTo != nil {
		builder = builder.Where(sq.LtOrEq{"price": *filter.PriceTo})
	}
	if filter.RateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"rate": *filter.RateFrom})
	}
	if filter.RateTo != nil {
		builder = builder.Where(sq.LtOrEq{"rate": *filter.RateTo})
	}

	builder = builder.
		OrderBy("id ASC").
		Limit(uint64(filter.Limit) + 1).
		Offset(repository.Offset(filter.Page, filter.Limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected food repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected food repository list error: %w", err)
	}
	defer rows.Close()

	foodModels := make([]FoodDB, 0, filter.Limit+1)
	for rows.Next() {
		foodDB, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected food repository list error: %w", err)
		}
		foodModels = append(foodModels, *foodDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected food repository list error: %w", err)
	}

	page := &entities.FoodPage{
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	if len(foodModels) > filter.Limit {
		page.HasMore = true
		foodModels = foodModels[:filter.Limit]
	}
	page.Items = ToDomainList(foodModels)

	return page, nil
}

func scanFood(row pgx.Row) (*FoodDB, error) {
	var f FoodDB
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Description,
		&f.Ingredients,
		&f.Price,
		&f.Rate,
		&f.Types,
		&f.PicturePath,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
