package app

import (
	"context"
	"net/http"

	paymentGateway "foodorder/internal/gateway/http/payment"
	"foodorder/internal/gateway/kafka/order_events"
	"foodorder/internal/handlers/rest/presenter"
	"foodorder/internal/handlers/tasks/payment_status_sync"
	"foodorder/internal/pkg/config"
	foodRepo "foodorder/internal/repository/food"
	orderRepo "foodorder/internal/repository/order"
	userRepo "foodorder/internal/repository/user"
	checkoutService "foodorder/internal/service/checkout"
	foodService "foodorder/internal/service/food"
	orderService "foodorder/internal/service/order"
	paymentService "foodorder/internal/service/payment"
	userService "foodorder/internal/service/user"
	"foodorder/pkg/background"
	"foodorder/pkg/logger"
	"foodorder/pkg/querier"
	"foodorder/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideFoodRepository(querier *querier.Querier) *foodRepo.Repository {
	return foodRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.PaymentGateway.RequestTimeout}
}

func provideGatewayEnvironment(cfg *config.Config) (midtrans.EnvironmentType, error) {
	return paymentGateway.ParseEnvironment(cfg.PaymentGateway.Environment)
}

func provideSnapClient(client *http.Client, env midtrans.EnvironmentType, cfg *config.Config) *snap.Client {
	return paymentGateway.NewSnapClient(client, cfg.PaymentGateway.ServerKey, env)
}

func provideCoreClient(client *http.Client, env midtrans.EnvironmentType, cfg *config.Config) *coreapi.Client {
	return paymentGateway.NewCoreClient(client, cfg.PaymentGateway.ServerKey, env)
}

func providePaymentGateway(snapClient *snap.Client, coreClient *coreapi.Client, cfg *config.Config) *paymentGateway.PaymentGateway {
	return paymentGateway.New(snapClient, coreClient, cfg.PaymentGateway.ServerKey)
}

// provideSignatureVerifier возвращает nil интерфейс, если проверка подписи выключена.
func provideSignatureVerifier(gateway *paymentGateway.PaymentGateway, cfg *config.Config) paymentService.SignatureVerifier {
	if !cfg.PaymentGateway.VerifySignature {
		return nil
	}
	return gateway
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) paymentService.EventPublisher {
	if producer == nil || cfg.Kafka.Topics.OrderStatusChanged == "" {
		return order_events.Noop{}
	}
	return order_events.New(producer, cfg.Kafka.Topics.OrderStatusChanged)
}

func providePaymentService(
	repository *orderRepo.Repository,
	publisher paymentService.EventPublisher,
	gateway *paymentGateway.PaymentGateway,
	verifier paymentService.SignatureVerifier,
	txManager *tx.Manager,
	log logger.Logger,
) *paymentService.Payment {
	return paymentService.New(repository, publisher, gateway, verifier, txManager, log)
}

func provideCheckoutService(
	orderRepository *orderRepo.Repository,
	foodRepository *foodRepo.Repository,
	userRepository *userRepo.Repository,
	gateway *paymentGateway.PaymentGateway,
	log logger.Logger,
	cfg *config.Config,
) *checkoutService.Checkout {
	return checkoutService.New(
		orderRepository,
		foodRepository,
		userRepository,
		gateway,
		log,
		checkoutService.Options{
			EnabledPayments: cfg.PaymentGateway.EnabledPayments,
			GatewayTimeout:  cfg.PaymentGateway.RequestTimeout,
			VerifyTotal:     cfg.Checkout.VerifyTotal,
		},
	)
}

func provideOrderService(repository *orderRepo.Repository) *orderService.Order {
	return orderService.New(repository)
}

func provideFoodService(repository *foodRepo.Repository) *foodService.Food {
	return foodService.New(repository)
}

func provideUserService(repository *userRepo.Repository) *userService.User {
	return userService.New(repository)
}

func providePresenter(cfg *config.Config) *presenter.Presenter {
	return presenter.New(cfg.Storage.PublicURL)
}

func providePaymentStatusSyncTask(
	log logger.Logger,
	service *paymentService.Payment,
	cfg *config.Config,
) *payment_status_sync.PaymentStatusSync {
	return payment_status_sync.NewPaymentStatusSync(
		service,
		log,
		cfg.Tasks.PaymentStatusSyncInterval,
		cfg.Tasks.PaymentStatusSyncMinAge,
		cfg.Tasks.PaymentStatusSyncBatch,
	)
}

func provideTaskList(
	paymentStatusSyncTask *payment_status_sync.PaymentStatusSync,
) []background.Task {
	return []background.Task{
		paymentStatusSyncTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
