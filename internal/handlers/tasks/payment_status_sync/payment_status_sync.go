package payment_status_sync

import (
	"context"
	"time"

	"foodorder/pkg/logger"
)

// PaymentStatusSync раз в interval добирает статусы зависших PENDING заказов у шлюза.
type PaymentStatusSync struct {
	service  Service
	log      taskLogger
	interval time.Duration
	minAge   time.Duration
	batch    int
}

func NewPaymentStatusSync(service Service, log taskLogger, interval, minAge time.Duration, batch int) *PaymentStatusSync {
	return &PaymentStatusSync{
		service:  service,
		log:      log,
		interval: interval,
		minAge:   minAge,
		batch:    batch,
	}
}

func (p *PaymentStatusSync) TTL() time.Duration {
	return p.interval
}

func (p *PaymentStatusSync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	result, err := p.service.SyncPendingPayments(ctxWithTimeout, p.minAge, p.batch)
	if err != nil {
		return err
	}

	fields := []logger.Field{
		logger.NewField("checked", result.Checked),
		logger.NewField("reconciled", result.Reconciled),
		logger.NewField("failed", result.Failed),
	}
	if result.Failed > 0 {
		p.log.Warn("payment status sync finished with failures", fields...)
		return nil
	}
	if result.Checked > 0 {
		p.log.Info("payment status sync finished", fields...)
	}

	return nil
}

func (p *PaymentStatusSync) Info() string {
	return "payment status sync"
}
