//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_status_sync_test
package payment_status_sync

import (
	"context"
	"time"

	"foodorder/internal/service/payment"
	"foodorder/pkg/logger"
)

type Service interface {
	SyncPendingPayments(ctx context.Context, olderThan time.Duration, limit int) (*payment.SyncResult, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
