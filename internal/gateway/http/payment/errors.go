package payment

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

var ErrEmptyRedirectURL = errors.New("payment gateway returned empty redirect url")

// APIError ответ шлюза с кодом не из 2xx.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("payment gateway responded %d", e.StatusCode)
	}
	return fmt.Sprintf("payment gateway responded %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// isRetryable для идемпотентных запросов (статус транзакции): сеть, 429 и 5xx.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
}

// isRetryableCreate повторяет создание транзакции, только если шлюз точно ее не создал:
// соединение не установлено или запрос отклонен лимитом. Повтор с тем же order_id
// после потерянного ответа шлюз отвергает как дубликат.
func isRetryableCreate(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}
