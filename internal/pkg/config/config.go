package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		PaymentStatusSyncInterval time.Duration
		PaymentStatusSyncMinAge   time.Duration // заказ младше этого возраста не трогаем, ждем webhook
		PaymentStatusSyncBatch    int
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int
		MinConns int
	}

	PaymentGateway struct {
		Environment     string // sandbox | production
		ServerKey       string
		RequestTimeout  time.Duration
		EnabledPayments []string
		VerifySignature bool
	}

	Checkout struct {
		VerifyTotal bool
	}

	Storage struct {
		PublicURL string
	}

	Kafka struct {
		PortHealthcheck string
		GRPCHealthPort  string
		Brokers         string
		ConsumerGroup   string
		Topics          KafkaTopics
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	KafkaTopics struct {
		PaymentNotification string
		OrderStatusChanged  string
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PaymentNotification PaymentNotification
	}

	PaymentNotification struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks          Tasks
		Server         HTTPServer
		Database       Database
		PaymentGateway PaymentGateway
		Checkout       Checkout
		Storage        Storage
		Kafka          Kafka
	}
)

const (
	defaultGatewayTimeout    = 10 * time.Second
	defaultSyncBatch         = 50
	defaultDatabaseMaxConns  = 10
	defaultDatabaseMinConns  = 2
	defaultEnabledPayments   = "bank_transfer,indomaret,gopay"
	defaultGatewayEnv        = "sandbox"
	defaultKafkaProcessLimit = 5 * time.Second
)

// BrokerList брокеры из KAFKA_BROKERS через запятую.
func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

// Enabled - Kafka опциональна для HTTP сервиса: без брокеров события не публикуются.
func (k Kafka) Enabled() bool {
	return len(k.BrokerList()) > 0
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase читает только настройки БД, нужен для миграций.
func LoadDatabase() (*Database, error) {
	db, err := loadDatabase()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(db); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return db, nil
}

// ValidateConsumer дополнительные требования воркера, читающего уведомления из Kafka.
func ValidateConsumer(cfg *Config) error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topics.PaymentNotification == "" {
		return errors.New("KAFKA_TOPIC_PAYMENT_NOTIFICATION is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Handlers.PaymentNotification.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PAYMENT_NOTIFICATION_PROCESS_TIMEOUT is required")
	}
	return nil
}

func loadFromEnv() (*Config, error) {
	syncInterval, err := osGetEnvDuration("BACKGROUND_PAYMENT_STATUS_SYNC_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	syncMinAge, err := osGetEnvDuration("BACKGROUND_PAYMENT_STATUS_SYNC_MIN_AGE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	syncBatch, err := osGetIntDefault("BACKGROUND_PAYMENT_STATUS_SYNC_BATCH", defaultSyncBatch)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	database, err := loadDatabase()
	if err != nil {
		return nil, err
	}

	gatewayTimeout, err := osGetEnvDuration("PAYMENT_GATEWAY_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if gatewayTimeout == 0 {
		gatewayTimeout = defaultGatewayTimeout
	}

	verifySignature, err := osGetBoolDefault("PAYMENT_WEBHOOK_VERIFY_SIGNATURE", true)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	verifyTotal, err := osGetBool("CHECKOUT_VERIFY_TOTAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentNotificationTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PAYMENT_NOTIFICATION_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if paymentNotificationTimeout == 0 {
		paymentNotificationTimeout = defaultKafkaProcessLimit
	}

	enabledPayments := os.Getenv("PAYMENT_GATEWAY_ENABLED_PAYMENTS")
	if enabledPayments == "" {
		enabledPayments = defaultEnabledPayments
	}

	gatewayEnv := os.Getenv("PAYMENT_GATEWAY_ENVIRONMENT")
	if gatewayEnv == "" {
		gatewayEnv = defaultGatewayEnv
	}

	return &Config{
		Tasks: Tasks{
			PaymentStatusSyncInterval: syncInterval,
			PaymentStatusSyncMinAge:   syncMinAge,
			PaymentStatusSyncBatch:    syncBatch,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: *database,
		PaymentGateway: PaymentGateway{
			Environment:     gatewayEnv,
			ServerKey:       os.Getenv("PAYMENT_GATEWAY_SERVER_KEY"),
			RequestTimeout:  gatewayTimeout,
			EnabledPayments: splitList(enabledPayments),
			VerifySignature: verifySignature,
		},
		Checkout: Checkout{
			VerifyTotal: verifyTotal,
		},
		Storage: Storage{
			PublicURL: strings.TrimRight(os.Getenv("STORAGE_PUBLIC_URL"), "/"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			GRPCHealthPort:  os.Getenv("KAFKA_GRPC_HEALTH_PORT"),
			Topics: KafkaTopics{
				PaymentNotification: os.Getenv("KAFKA_TOPIC_PAYMENT_NOTIFICATION"),
				OrderStatusChanged:  os.Getenv("KAFKA_TOPIC_ORDER_STATUS_CHANGED"),
			},
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PaymentNotification: PaymentNotification{
					ProcessTimeout: paymentNotificationTimeout,
				},
			},
		},
	}, nil
}

func loadDatabase() (*Database, error) {
	maxConns, err := osGetIntDefault("POSTGRES_MAX_CONNS", defaultDatabaseMaxConns)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minConns, err := osGetIntDefault("POSTGRES_MIN_CONNS", defaultDatabaseMinConns)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		MaxConns: maxConns,
		MinConns: minConns,
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Tasks.PaymentStatusSyncInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PAYMENT_STATUS_SYNC_INTERVAL is required")
	}
	if cfg.Tasks.PaymentStatusSyncBatch <= 0 {
		return errors.New("BACKGROUND_PAYMENT_STATUS_SYNC_BATCH must be positive")
	}

	if env := cfg.PaymentGateway.Environment; env != "sandbox" && env != "production" {
		return fmt.Errorf("PAYMENT_GATEWAY_ENVIRONMENT must be sandbox or production, got %q", env)
	}
	if cfg.PaymentGateway.ServerKey == "" {
		return errors.New("PAYMENT_GATEWAY_SERVER_KEY is required")
	}
	if len(cfg.PaymentGateway.EnabledPayments) == 0 {
		return errors.New("PAYMENT_GATEWAY_ENABLED_PAYMENTS is required")
	}

	if cfg.Kafka.Enabled() {
		if cfg.Kafka.Topics.OrderStatusChanged == "" {
			return errors.New("KAFKA_TOPIC_ORDER_STATUS_CHANGED is required when KAFKA_BROKERS is set")
		}
		if cfg.Kafka.Sarama.Version == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required when KAFKA_BROKERS is set")
		}
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if db.MaxConns < db.MinConns {
		return errors.New("POSTGRES_MAX_CONNS must be >= POSTGRES_MIN_CONNS")
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func osGetInt(s string) (int, error) {
	return osGetIntDefault(s, 0)
}

func osGetIntDefault(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	return osGetBoolDefault(s, false)
}

func osGetBoolDefault(s string, def bool) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
