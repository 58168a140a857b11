package food

import "time"

type FoodDB struct {
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
