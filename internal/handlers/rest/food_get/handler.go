package food_get

import (
	"errors"
	"net/http"
	"net/url"

	"foodorder/internal/entities"
	"foodorder/internal/handlers/rest/presenter"
	"foodorder/internal/handlers/rest/query"
	"foodorder/internal/pkg/response"
	"foodorder/internal/service/food"
	"foodorder/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	presenter *presenter.Presenter
}

func New(log handlerLogger, service Service, presenter *presenter.Presenter) *Handler {
	handlerLog := log.With(logger.NewField("handler", "food_get"))

	return &Handler{
		log:       handlerLog,
		service:   service,
		presenter: presenter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	id, err := query.Int64(values, "id")
	if err != nil {
		h.badRequest(w, err)
		return
	}

	if id != nil {
		item, err := h.service.GetFood(r.Context(), *id)
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.write(w, response.Success(h.presenter.Food(*item), "Data produk berhasil diambil"))
		return
	}

	filter, err := parseFilter(values)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	page, err := h.service.ListFoods(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.write(w, response.Success(h.presenter.FoodPage(page), "Data list produk berhasil diambil"))
}

func parseFilter(values url.Values) (entities.FoodFilter, error) {
	filter := entities.FoodFilter{
		Name:  query.String(values, "name"),
		Types: query.String(values, "types"),
	}

	var err error
	if filter.PriceFrom, err = query.Int64(values, "price_from"); err != nil {
		return filter, err
	}
	if filter.PriceTo, err = query.Int64(values, "price_to"); err != nil {
		return filter, err
	}
	if filter.RateFrom, err = query.Float64(values, "rate_from"); err != nil {
		return filter, err
	}
	if filter.RateTo, err = query.Float64(values, "rate_to"); err != nil {
		return filter, err
	}
	if filter.Limit, err = query.Int(values, "limit"); err != nil {
		return filter, err
	}
	if filter.Page, err = query.Int(values, "page"); err != nil {
		return filter, err
	}

	return filter, nil
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrFoodNotFound):
		h.write(w, response.Error(http.StatusNotFound, "Data produk tidak ada", nil))
	case errors.Is(err, food.ErrInvalidFoodID),
		errors.Is(err, food.ErrInvalidRange),
		errors.Is(err, food.ErrInvalidPage):
		h.badRequest(w, err)
	default:
		h.log.Error("get foods failed", logger.NewField("error", err))
		h.write(w, response.Error(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, err error) {
	h.write(w, response.Error(http.StatusBadRequest, "Invalid query", response.ErrorData(err.Error(), nil)))
}

func (h *Handler) write(w http.ResponseWriter, env response.Envelope) {
	if err := response.Write(w, env); err != nil {
		h.log.Error("encode JSON response", logger.NewField("error", err))
	}
}
