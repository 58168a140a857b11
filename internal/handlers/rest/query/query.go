// Package query разбирает необязательные query-параметры. Пустое значение это nil.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

func String(values url.Values, key string) *string {
	v := strings.TrimSpace(values.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func Int64(values url.Values, key string) (*int64, error) {
	v := String(values, key)
	if v == nil {
		return nil, nil
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &n, nil
}

func Float64(values url.Values, key string) (*float64, error) {
	v := String(values, key)
	if v == nil {
		return nil, nil
	}
	n, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &n, nil
}

// Int возвращает 0 для отсутствующего параметра.
func Int(values url.Values, key string) (int, error) {
	v := String(values, key)
	if v == nil {
		return 0, nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}
