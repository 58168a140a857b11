package food

import "foodorder/internal/entities"

func ToDomain(f *FoodDB) *entities.Food {
	if f == nil {
		return nil
	}
	return &entities.Food{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Ingredients: f.Ingredients,
		Price:       f.Price,
		Rate:        f.Rate,
		Types:       f.Types,
		PicturePath: f.PicturePath,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func ToDomainList(foods []FoodDB) []entities.Food {
	result := make([]entities.Food, 0, len(foods))
	for i := range foods {
		result = append(result, *ToDomain(&foods[i]))
	}
	return result
}
