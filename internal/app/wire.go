//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"foodorder/internal/handlers/rest/presenter"
	"foodorder/internal/pkg/config"
	checkoutService "foodorder/internal/service/checkout"
	foodService "foodorder/internal/service/food"
	orderService "foodorder/internal/service/order"
	paymentService "foodorder/internal/service/payment"
	userService "foodorder/internal/service/user"
	"foodorder/pkg/background"
	"foodorder/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	CheckoutService   *checkoutService.Checkout
	PaymentService    *paymentService.Payment
	OrderService      *orderService.Order
	FoodService       *foodService.Food
	UserService       *userService.User
	Presenter         *presenter.Presenter
	BackgroundWorkers *background.Worker
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideOrderRepository,
	provideFoodRepository,
	provideUserRepository,
)

var paymentSet = wire.NewSet(
	provideHTTPClient,
	provideGatewayEnvironment,
	provideSnapClient,
	provideCoreClient,
	providePaymentGateway,
	provideSignatureVerifier,
	provideEventPublisher,
	providePaymentService,
)

// InitializeApplication для HTTP сервиса (cmd/service).
// producer == nil, если Kafka не настроена: события смены статуса тогда не публикуются.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		paymentSet,

		provideCheckoutService,
		provideOrderService,
		provideFoodService,
		provideUserService,
		providePresenter,

		providePaymentStatusSyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Payment
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-notification)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		paymentSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
