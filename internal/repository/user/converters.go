package user

import "foodorder/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Address:          u.Address,
		HouseNumber:      u.HouseNumber,
		PhoneNumber:      u.PhoneNumber,
		City:             u.City,
		ProfilePhotoPath: u.ProfilePhotoPath,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
