package ping_get

import (
	"encoding/json"
	"net/http"

	"foodorder/internal/generated/dto"
	"foodorder/pkg/logger"
)

// Handler liveness probe, ничего кроме самого процесса не проверяет.
type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping_get")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.PingResponse{Message: &message}); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
