package payment

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodorder/internal/entities"
	retrierconfig "foodorder/pkg/retrier"
	"foodorder/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "payment-gateway"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

type PaymentGateway struct {
	snap          snapClient
	core          coreClient
	createRetrier retrier
	statusRetrier retrier
	serverKey     string
}

func New(snap snapClient, core coreClient, serverKey string) *PaymentGateway {
	return &PaymentGateway{
		snap:          snap,
		core:          core,
		createRetrier: backoff_adapter.New(retryConfig(isRetryableCreate)),
		statusRetrier: backoff_adapter.New(retryConfig(isRetryable)),
		serverKey:     serverKey,
	}
}

func retryConfig(shouldRetry retrierconfig.ShouldRetryFunc) retrierconfig.Config {
	return retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     shouldRetry,
	}
}

// CreatePaymentSession открывает hosted-сессию оплаты для заказа.
func (g *PaymentGateway) CreatePaymentSession(ctx context.Context, req entities.PaymentSessionRequest) (*entities.PaymentSession, error) {
	snapReq := toSnapRequest(req)

	var session *entities.PaymentSession

	err := g.executeWithMetrics(ctx, g.createRetrier, "CreateTransaction", func(ctx context.Context) (int, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		out, sdkErr := g.snap.CreateTransaction(snapReq)
		if sdkErr != nil {
			var messages []string
			if out != nil {
				messages = out.ErrorMessages
			}
			return sdkErr.StatusCode, fromSDKError(sdkErr, messages)
		}

		session = &entities.PaymentSession{Token: out.Token, RedirectURL: out.RedirectURL}
		return http.StatusCreated, nil
	})
	if err != nil {
		return nil, fmt.Errorf("gateway payment, create session for order %d: %w", req.OrderID, err)
	}

	if session.RedirectURL == "" {
		return nil, fmt.Errorf("gateway payment, create session for order %d: %w", req.OrderID, ErrEmptyRedirectURL)
	}

	return session, nil
}

// GetPaymentStatus запрашивает текущий статус транзакции по id заказа.
func (g *PaymentGateway) GetPaymentStatus(ctx context.Context, orderID int64) (*entities.PaymentStatus, error) {
	id := strconv.FormatInt(orderID, 10)

	var status *entities.PaymentStatus

	err := g.executeWithMetrics(ctx, g.statusRetrier, "GetStatus", func(ctx context.Context) (int, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		out, sdkErr := g.core.CheckTransaction(id)
		if sdkErr != nil {
			return sdkErr.StatusCode, fromSDKError(sdkErr, nil)
		}

		// шлюз отвечает 200 и кладет настоящий код в тело
		if out.StatusCode == "404" {
			return http.StatusNotFound, &APIError{StatusCode: http.StatusNotFound, Messages: []string{out.StatusMessage}}
		}

		converted, err := toPaymentStatus(out)
		if err != nil {
			return http.StatusOK, err
		}
		status = converted
		return http.StatusOK, nil
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("gateway payment, order %d: %w", orderID, entities.ErrPaymentTransactionNotFound)
		}
		return nil, fmt.Errorf("gateway payment, get status for order %d: %w", orderID, err)
	}

	return status, nil
}

// VerifySignature сверяет signature_key уведомления:
// sha512(order_id + status_code + gross_amount + server_key).
func (g *PaymentGateway) VerifySignature(notification entities.PaymentNotification) bool {
	expected := Signature(notification.OrderID, notification.StatusCode, notification.GrossAmount, g.serverKey)

	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(notification.SignatureKey))) == 1
}

func Signature(orderID int64, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(strconv.FormatInt(orderID, 10) + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func (g *PaymentGateway) executeWithMetrics(ctx context.Context, r retrier, method string, fn func(context.Context) (int, error)) error {
	var (
		attempt uint64
		code    int
	)
	start := time.Now()

	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		var err error
		code, err = fn(ctx)
		return err
	})

	httpCode := httpCodeLabel(code, err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Add(float64(attempt - 1))
	}

	return err
}

func httpCodeLabel(code int, err error) string {
	if code == 0 {
		if err != nil {
			return "NETWORK"
		}
		return "UNKNOWN"
	}
	return strconv.Itoa(code)
}
