package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/entities"
	"foodorder/internal/repository"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	orderColumns = `id, user_id, food_id, quantity, total, status, payment_url, created_at, updated_at`

	detailsColumns = `
		o.id, o.user_id, o.food_id, o.quantity, o.total, o.status, o.payment_url, o.created_at, o.updated_at,
		f.id, f.name, f.description, f.ingredients, f.price, f.rate, f.types, f.picture_path, f.created_at, f.updated_at,
		u.id, u.name, u.email, u.address, u.house_number, u.phone_number, u.city, u.profile_photo_path, u.created_at, u.updated_at`

	detailsFrom = `orders o
		JOIN foods f ON f.id = o.food_id
		JOIN users u ON u.id = o.user_id`

	foodForeignKey = "orders_food_id_fkey"
	userForeignKey = "orders_user_id_fkey"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModify)

	query := `
		INSERT INTO orders (user_id, food_id, quantity, total, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModifyDB.UserID,
		orderModifyDB.FoodID,
		orderModifyDB.Quantity,
		orderModifyDB.Total,
		orderModifyDB.Status,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			if repository.PgConstraintName(err) == userForeignKey {
				return nil, entities.ErrUserNotFound
			}
			return nil, entities.ErrFoodNotFound
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1 AND deleted_at IS NULL`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// GetByIDForUpdate блокирует строку заказа до конца текущей транзакции.
// Вне транзакции блокировка снимается сразу после запроса.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid for update error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// SetPaymentURL записывает ссылку на оплату только если она еще не задана.
func (r *Repository) SetPaymentURL(ctx context.Context, id int64, paymentURL string) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET payment_url = $2, updated_at = NOW()
		WHERE id = $1 AND payment_url IS NULL AND deleted_at IS NULL
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id, paymentURL))
	if err == nil {
		return ToDomain(orderDB), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected order repository set payment url error: %w", err)
	}

	// строка не обновилась: либо заказа нет, либо ссылка уже есть
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, entities.ErrPaymentURLAlreadySet
}

func (r *Repository) FindWithAssociations(ctx context.Context, id int64) (*entities.OrderDetails, error) {
	query := `SELECT ` + detailsColumns + `
		FROM ` + detailsFrom + `
		WHERE o.id = $1 AND o.deleted_at IS NULL`

	detailsDB, err := scanOrderDetails(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository find with associations error: %w", err)
	}

	return ToDetailsDomain(detailsDB), nil
}

// ListByUser возвращает страницу заказов пользователя, новые первыми.
func (r *Repository) ListByUser(ctx context.Context, filter entities.OrderFilter) (*entities.OrderPage, error) {
	builder := qb.
		Select(detailsColumns).
		From(detailsFrom).
		Where(sq.Eq{"o.user_id": filter.UserID}).
		Where("o.deleted_at IS NULL")

	// опциональные фильтры
	if filter.FoodID != nil {
		builder = builder.Where(sq.Eq{"o.food_id": *filter.FoodID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"o.status": filter.Status.String()})
	}

	// берем на одну строку больше, чтобы понять есть ли следующая страница
	builder = builder.
		OrderBy("o.id DESC").
		Limit(uint64(filter.Limit) + 1).
		Offset(repository.Offset(filter.Page, filter.Limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.OrderDetails, 0, filter.Limit+1)
	for rows.Next() {
		detailsDB, err := scanOrderDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		items = append(items, *ToDetailsDomain(detailsDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	page := &entities.OrderPage{
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	if len(items) > filter.Limit {
		page.HasMore = true
		items = items[:filter.Limit]
	}
	page.Items = items

	return page, nil
}

// ListPendingWithPaymentURL заказы, по которым сессия оплаты создана, но финального статуса еще нет.
func (r *Repository) ListPendingWithPaymentURL(ctx context.Context, olderThan time.Time, limit int) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1
		  AND payment_url IS NOT NULL
		  AND deleted_at IS NULL
		  AND created_at < $2
		ORDER BY created_at ASC
		LIMIT $3`

	rows, err := r.querier.Query(ctx, query, entities.OrderPending.String(), olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, limit)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
		}
		orderModels = append(orderModels, *orderDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.FoodID,
		&o.Quantity,
		&o.Total,
		&o.Status,
		&o.PaymentURL,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrderDetails(row pgx.Row) (*OrderDetailsDB, error) {
	var d OrderDetailsDB
	err := row.Scan(
		&d.Order.ID,
		&d.Order.UserID,
		&d.Order.FoodID,
		&d.Order.Quantity,
		&d.Order.Total,
		&d.Order.Status,
		&d.Order.PaymentURL,
		&d.Order.CreatedAt,
		&d.Order.UpdatedAt,
		&d.Food.ID,
		&d.Food.Name,
		&d.Food.Description,
		&d.Food.Ingredients,
		&d.Food.Price,
		&d.Food.Rate,
		&d.Food.Types,
		&d.Food.PicturePath,
		&d.Food.CreatedAt,
		&d.Food.UpdatedAt,
		&d.User.ID,
		&d.User.Name,
		&d.User.Email,
		&d.User.Address,
		&d.User.HouseNumber,
		&d.User.PhoneNumber,
		&d.User.City,
		&d.User.ProfilePhotoPath,
		&d.User.CreatedAt,
		&d.User.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
