// Package presenter переводит доменные сущности в DTO ответа.
package presenter

import (
	"strings"

	"foodorder/internal/entities"
	"foodorder/internal/generated/dto"
)

// Presenter знает публичный адрес object storage для картинок.
type Presenter struct {
	storageURL string
}

func New(storageURL string) *Presenter {
	return &Presenter{
		storageURL: strings.TrimRight(storageURL, "/"),
	}
}

func (p *Presenter) Transaction(details *entities.OrderDetails) dto.Transaction {
	res := p.order(details.Order)

	food := p.Food(details.Food)
	res.Food = &food
	user := p.User(details.User)
	res.User = &user

	return res
}

func (p *Presenter) TransactionPage(page *entities.OrderPage) dto.TransactionPage {
	items := make([]dto.Transaction, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, p.Transaction(&page.Items[i]))
	}

	return dto.TransactionPage{
		Items:   items,
		Page:    page.Page,
		Limit:   page.Limit,
		HasMore: page.HasMore,
	}
}

func (p *Presenter) Food(food entities.Food) dto.Food {
	return dto.Food{
		Id:          food.ID,
		Name:        food.Name,
		Description: optional(food.Description),
		Ingredients: optional(food.Ingredients),
		Price:       food.Price,
		Rate:        food.Rate,
		Types:       optional(food.Types),
		PicturePath: p.publicURL(food.PicturePath),
		CreatedAt:   &food.CreatedAt,
		UpdatedAt:   &food.UpdatedAt,
	}
}

func (p *Presenter) FoodPage(page *entities.FoodPage) dto.FoodPage {
	items := make([]dto.Food, 0, len(page.Items))
	for _, food := range page.Items {
		items = append(items, p.Food(food))
	}

	return dto.FoodPage{
		Items:   items,
		Page:    page.Page,
		Limit:   page.Limit,
		HasMore: page.HasMore,
	}
}

func (p *Presenter) User(user entities.User) dto.User {
	return dto.User{
		Id:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Address:         optional(user.Address),
		HouseNumber:     optional(user.HouseNumber),
		PhoneNumber:     optional(user.PhoneNumber),
		City:            optional(user.City),
		ProfilePhotoUrl: p.publicURL(user.ProfilePhotoPath),
	}
}

func (p *Presenter) order(order entities.Order) dto.Transaction {
	return dto.Transaction{
		Id:         order.ID,
		UserId:     order.UserID,
		FoodId:     order.FoodID,
		Quantity:   order.Quantity,
		Total:      order.Total,
		Status:     dto.TransactionStatus(order.Status),
		PaymentUrl: order.PaymentURL,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

func (p *Presenter) publicURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	if strings.HasPrefix(*path, "http://") || strings.HasPrefix(*path, "https://") || p.storageURL == "" {
		return path
	}

	url := p.storageURL + "/" + strings.TrimLeft(*path, "/")
	return &url
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
