package transaction_get

import (
	"errors"
	"net/http"
	"net/url"

	"foodorder/internal/entities"
	"foodorder/internal/handlers/rest/presenter"
	"foodorder/internal/handlers/rest/query"
	"foodorder/internal/pkg/middlewares/auth"
	"foodorder/internal/pkg/response"
	"foodorder/internal/service/order"
	"foodorder/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	presenter *presenter.Presenter
}

func New(log handlerLogger, service Service, presenter *presenter.Presenter) *Handler {
	handlerLog := log.With(logger.NewField("handler", "transaction_get"))

	return &Handler{
		log:       handlerLog,
		service:   service,
		presenter: presenter,
	}
}

// ServeHTTP с ?id отдает один заказ, без него страницу заказов текущего пользователя.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	current, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.write(w, response.Error(http.StatusUnauthorized, "Unauthenticated", nil))
		return
	}

	values := r.URL.Query()

	id, err := query.Int64(values, "id")
	if err != nil {
		h.badRequest(w, err)
		return
	}
	if id != nil {
		h.one(w, r, current.ID, *id)
		return
	}

	filter, err := parseFilter(current.ID, values)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	page, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus), errors.Is(err, order.ErrInvalidPage):
			h.badRequest(w, err)
		default:
			h.internal(w, err, current.ID)
		}
		return
	}

	h.write(w, response.Success(h.presenter.TransactionPage(page), "Data list transaksi berhasil diambil"))
}

func (h *Handler) one(w http.ResponseWriter, r *http.Request, userID, orderID int64) {
	details, err := h.service.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrOrderNotFound):
			h.write(w, response.Error(http.StatusNotFound, "Data transaksi tidak ada", nil))
		case errors.Is(err, order.ErrInvalidOrderID):
			h.badRequest(w, err)
		default:
			h.internal(w, err, userID)
		}
		return
	}

	h.write(w, response.Success(h.presenter.Transaction(details), "Data transaksi berhasil diambil"))
}

func parseFilter(userID int64, values url.Values) (entities.OrderFilter, error) {
	filter := entities.OrderFilter{UserID: userID}

	foodID, err := query.Int64(values, "food_id")
	if err != nil {
		return filter, err
	}
	filter.FoodID = foodID

	if status := query.String(values, "status"); status != nil {
		s := entities.OrderStatusType(*status)
		filter.Status = &s
	}

	if filter.Limit, err = query.Int(values, "limit"); err != nil {
		return filter, err
	}
	if filter.Page, err = query.Int(values, "page"); err != nil {
		return filter, err
	}

	return filter, nil
}

func (h *Handler) badRequest(w http.ResponseWriter, err error) {
	h.write(w, response.Error(http.StatusBadRequest, "Invalid query", response.ErrorData(err.Error(), nil)))
}

func (h *Handler) internal(w http.ResponseWriter, err error, userID int64) {
	h.log.Error("get transactions failed",
		logger.NewField("error", err),
		logger.NewField("user_id", userID),
	)
	h.write(w, response.Error(http.StatusInternalServerError, "Internal server error", nil))
}

func (h *Handler) write(w http.ResponseWriter, env response.Envelope) {
	if err := response.Write(w, env); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
