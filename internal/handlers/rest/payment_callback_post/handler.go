package payment_callback_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"foodorder/internal/entities"
	"foodorder/internal/generated/dto"
	"foodorder/internal/pkg/response"
	"foodorder/internal/service/payment"
	"foodorder/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "payment_callback_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP принимает уведомление шлюза. Не 2xx заставляет шлюз повторить доставку,
// поэтому 404 на неизвестный заказ отдается намеренно.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentNotification
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.write(w, response.Error(http.StatusBadRequest, "Invalid JSON body", nil))
		return
	}

	notification, err := toDomain(req)
	if err != nil {
		h.write(w, response.Error(http.StatusBadRequest, "Invalid notification", response.ErrorData(err.Error(), nil)))
		return
	}

	order, err := h.service.HandleNotification(r.Context(), notification)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidNotification):
			h.write(w, response.Error(http.StatusBadRequest, "Invalid notification", nil))
		case errors.Is(err, payment.ErrInvalidSignature):
			h.log.Warn("payment notification with invalid signature",
				logger.NewField("order_id", notification.OrderID),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			h.write(w, response.Error(http.StatusForbidden, "Invalid signature", nil))
		case errors.Is(err, entities.ErrOrderNotFound):
			h.write(w, response.Error(http.StatusNotFound, "Transaction not found", nil))
		default:
			h.log.Error("payment notification failed",
				logger.NewField("error", err),
				logger.NewField("order_id", notification.OrderID),
			)
			h.write(w, response.Error(http.StatusInternalServerError, "Internal server error", nil))
		}
		return
	}

	h.write(w, response.Success(map[string]any{
		"id":     order.ID,
		"status": order.Status,
	}, "Notification processed"))
}

func (h *Handler) write(w http.ResponseWriter, env response.Envelope) {
	if err := response.Write(w, env); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
