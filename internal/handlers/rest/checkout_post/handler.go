package checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"foodorder/internal/entities"
	"foodorder/internal/generated/dto"
	"foodorder/internal/handlers/rest/presenter"
	"foodorder/internal/pkg/middlewares/auth"
	"foodorder/internal/pkg/response"
	"foodorder/internal/service/checkout"
	"foodorder/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	presenter *presenter.Presenter
}

func New(log handlerLogger, service Service, presenter *presenter.Presenter) *Handler {
	handlerLog := log.With(logger.NewField("handler", "checkout_post"))

	return &Handler{
		log:       handlerLog,
		service:   service,
		presenter: presenter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	buyer, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.write(w, response.Error(http.StatusUnauthorized, "Unauthenticated", nil))
		return
	}

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.write(w, response.Error(http.StatusBadRequest, "Invalid JSON body", nil))
		return
	}

	details, err := h.service.Checkout(r.Context(), buyer.ID, entities.CheckoutRequest{
		FoodID:   req.FoodId,
		Quantity: req.Quantity,
		Total:    req.Total,
		Status:   req.Status,
	})
	if err != nil {
		h.writeError(w, err, buyer.ID)
		return
	}

	h.write(w, response.Success(h.presenter.Transaction(details), "Transaksi Berhasil"))
}

func (h *Handler) writeError(w http.ResponseWriter, err error, userID int64) {
	var (
		validationErr *checkout.ValidationError
		gatewayErr    *checkout.PaymentGatewayError
	)

	switch {
	case errors.As(err, &validationErr):
		h.write(w, response.Error(http.StatusBadRequest, "Validation failed",
			response.ErrorData("", fieldErrors(validationErr.Fields))))

	case errors.As(err, &gatewayErr):
		h.write(w, response.Error(http.StatusBadGateway, "Transaksi Gagal",
			response.ErrorData(gatewayErr.Message(), nil)))

	case errors.Is(err, entities.ErrUserNotFound):
		h.write(w, response.Error(http.StatusUnauthorized, "Unauthenticated", nil))

	default:
		h.log.Error("checkout failed",
			logger.NewField("error", err),
			logger.NewField("user_id", userID),
		)
		h.write(w, response.Error(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func (h *Handler) write(w http.ResponseWriter, env response.Envelope) {
	if err := response.Write(w, env); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func fieldErrors(fields []checkout.FieldError) map[string][]string {
	res := make(map[string][]string, len(fields))
	for _, f := range fields {
		res[f.Field] = append(res[f.Field], f.Message)
	}
	return res
}
