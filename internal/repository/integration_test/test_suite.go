package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"foodorder/internal/pkg/config"
	"foodorder/internal/pkg/migrations"
	"foodorder/internal/pkg/postgres"
	"foodorder/pkg/logger/zap_adapter"
	"foodorder/pkg/querier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	querierInstance *querier.Querier
	poolInstance    *pgxpool.Pool
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg, err := config.LoadDatabase()
		if err != nil {
			log.Fatalf("failed to load database config: %v", err)
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := migrations.Up(ctx, zapLogger, connPool); err != nil {
			panic(err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

// GetPool пул под querier, нужен тестам с транзакциями.
func GetPool() *pgxpool.Pool {
	GetQuerier()
	return poolInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE orders, foods, personal_access_tokens, users RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// BaseFixtures два пользователя и две позиции меню, используются большинством тестов.
const BaseFixtures = `
	INSERT INTO users (id, name, email, address, house_number, phone_number, city)
	VALUES
		(1, 'Budi', 'budi@example.com', 'Jl. Merdeka', '12', '+6281111111', 'Bandung'),
		(2, 'Sari', 'sari@example.com', 'Jl. Sudirman', '7', '+6282222222', 'Jakarta');

	INSERT INTO foods (id, name, description, ingredients, price, rate, types, picture_path)
	VALUES
		(42, 'Sate Ayam', 'chicken satay', 'chicken, peanut', 25000, 4.5, 'recommended,popular', 'food/sate.png'),
		(43, 'Nasi Goreng', 'fried rice', 'rice, egg', 20000, 4.2, 'new_food', NULL);

	SELECT setval('users_id_seq', 100);
	SELECT setval('foods_id_seq', 100);
`
