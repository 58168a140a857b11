// Package response собирает единый JSON конверт {meta, data}.
// Конструкторы чистые: каждый вызов возвращает новое значение.
package response

import (
	"encoding/json"
	"net/http"

	"foodorder/internal/generated/dto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type Envelope struct {
	Meta dto.Meta `json:"meta"`
	Data any      `json:"data"`
}

func Success(data any, message string) Envelope {
	return Envelope{
		Meta: dto.Meta{
			Code:    http.StatusOK,
			Status:  statusSuccess,
			Message: message,
		},
		Data: data,
	}
}

func Error(code int, message string, data any) Envelope {
	return Envelope{
		Meta: dto.Meta{
			Code:    code,
			Status:  statusError,
			Message: message,
		},
		Data: data,
	}
}

// ErrorData тело data для ошибок: общий текст и ошибки по полям.
func ErrorData(message string, fields map[string][]string) *dto.ErrorData {
	data := &dto.ErrorData{}
	if message != "" {
		data.Message = &message
	}
	if len(fields) > 0 {
		data.Errors = &fields
	}
	return data
}

// Write пишет конверт с HTTP кодом из meta.code.
func Write(w http.ResponseWriter, env Envelope) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.Meta.Code)
	return json.NewEncoder(w).Encode(env)
}
