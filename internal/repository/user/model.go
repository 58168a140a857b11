package user

import "time"

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
