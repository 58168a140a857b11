package order

import "time"

type OrderDB struct {
	ID         int64
	UserID     int64
	FoodID     int64
	Quantity   int
	Total      int64
	Status     string
	PaymentURL *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderModifyDB struct {
	ID         *int64
	UserID     *int64
	FoodID     *int64
	Quantity   *int
	Total      *int64
	Status     *string
	PaymentURL *string
}

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

type UserDB struct {
	ID               int64
	Name             string
	Email            string
	Address          string
	HouseNumber      string
	PhoneNumber      string
	City             string
	ProfilePhotoPath *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderDetailsDB строка JOIN orders + foods + users.
type OrderDetailsDB struct {
	Order OrderDB
	Food  FoodDB
	User  UserDB
}
