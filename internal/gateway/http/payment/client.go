package payment

import (
	"fmt"
	"net/http"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

func ParseEnvironment(env string) (midtrans.EnvironmentType, error) {
	switch env {
	case EnvironmentSandbox:
		return midtrans.Sandbox, nil
	case EnvironmentProduction:
		return midtrans.Production, nil
	default:
		return 0, fmt.Errorf("unknown payment gateway environment %q", env)
	}
}

// NewSnapClient клиент hosted-оплаты. httpClient задает таймаут одного запроса.
func NewSnapClient(httpClient *http.Client, serverKey string, env midtrans.EnvironmentType) *snap.Client {
	var c snap.Client
	c.New(serverKey, env)
	c.HttpClient = withHTTPClient(c.HttpClient, httpClient)
	return &c
}

// NewCoreClient клиент Core API, нужен для запроса статуса транзакции.
func NewCoreClient(httpClient *http.Client, serverKey string, env midtrans.EnvironmentType) *coreapi.Client {
	var c coreapi.Client
	c.New(serverKey, env)
	c.HttpClient = withHTTPClient(c.HttpClient, httpClient)
	return &c
}

// withHTTPClient подменяет глобальный midtrans.DefaultGoHttpClient на свой клиент с таймаутом.
func withHTTPClient(current midtrans.HttpClient, httpClient *http.Client) midtrans.HttpClient {
	impl, ok := current.(*midtrans.HttpClientImplementation)
	if !ok || httpClient == nil {
		return current
	}

	clone := *impl
	clone.HttpClient = httpClient
	return &clone
}
