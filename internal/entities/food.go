package entities

import "time"

type Food struct {
	ID          int64
	Name        string
	Description string
	Ingredients string
	Price       int64
	Rate        float64
	Types       string
	PicturePath *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type FoodFilter struct {
	Name      *string
	Types     *string
	PriceFrom *int64
	PriceTo   *int64
	RateFrom  *float64
	RateTo    *float64
	Limit     int
	Page      int
}

type FoodPage struct {
	Items   []Food
	Page    int
	Limit   int
	HasMore bool
}
