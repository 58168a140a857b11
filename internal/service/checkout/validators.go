package checkout

import (
	"strings"

	"foodorder/internal/entities"
)

const (
	msgRequired     = "field is required"
	msgPositive     = "must be greater than 0"
	msgFoodNotFound = "selected food does not exist"
	msgTotalInvalid = "does not match food price multiplied by quantity"
)

type validator struct {
	fields []FieldError
}

func (v *validator) add(field, message string) {
	v.fields = append(v.fields, FieldError{Field: field, Message: message})
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

func validateShape(v *validator, req entities.CheckoutRequest) {
	if req.FoodID == nil {
		v.add("food_id", msgRequired)
	}

	switch {
	case req.Quantity == nil:
		v.add("quantity", msgRequired)
	case *req.Quantity <= 0:
		v.add("quantity", msgPositive)
	}

	switch {
	case req.Total == nil:
		v.add("total", msgRequired)
	case *req.Total <= 0:
		v.add("total", msgPositive)
	}

	if req.Status == nil || strings.TrimSpace(*req.Status) == "" {
		v.add("status", msgRequired)
	}
}

// isTotalConsistent сравнивает total с price*quantity делением: произведение может переполнить int64.
func isTotalConsistent(food *entities.Food, quantity int, total int64) bool {
	if food.Price <= 0 {
		return false
	}
	return total%food.Price == 0 && total/food.Price == int64(quantity)
}
