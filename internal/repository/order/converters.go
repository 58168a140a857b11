package order

import "foodorder/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:         o.ID,
		UserID:     o.UserID,
		FoodID:     o.FoodID,
		Quantity:   o.Quantity,
		Total:      o.Total,
		Status:     entities.OrderStatusType(o.Status),
		PaymentURL: o.PaymentURL,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func ToDomainList(orders []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}

func ToDetailsDomain(d *OrderDetailsDB) *entities.OrderDetails {
	if d == nil {
		return nil
	}
	return &entities.OrderDetails{
		Order: *ToDomain(&d.Order),
		Food: entities.Food{
			ID:          d.Food.ID,
			Name:        d.Food.Name,
			Description: d.Food.Description,
			Ingredients: d.Food.Ingredients,
			Price:       d.Food.Price,
			Rate:        d.Food.Rate,
			Types:       d.Food.Types,
			PicturePath: d.Food.PicturePath,
			CreatedAt:   d.Food.CreatedAt,
			UpdatedAt:   d.Food.UpdatedAt,
		},
		User: entities.User{
			ID:               d.User.ID,
			Name:             d.User.Name,
			Email:            d.User.Email,
			Address:          d.User.Address,
			HouseNumber:      d.User.HouseNumber,
			PhoneNumber:      d.User.PhoneNumber,
			City:             d.User.City,
			ProfilePhotoPath: d.User.ProfilePhotoPath,
			CreatedAt:        d.User.CreatedAt,
			UpdatedAt:        d.User.UpdatedAt,
		},
	}
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{
		ID:         o.ID,
		UserID:     o.UserID,
		FoodID:     o.FoodID,
		Quantity:   o.Quantity,
		Total:      o.Total,
		PaymentURL: o.PaymentURL,
	}

	if o.Status != nil {
		status := o.Status.String()
		orderModifyDB.Status = &status
	}

	return orderModifyDB
}
