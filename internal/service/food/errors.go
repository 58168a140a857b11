package food

import "errors"

var (
	ErrInvalidFoodID = errors.New("invalid food id")
	ErrInvalidRange  = errors.New("invalid filter range")
	ErrInvalidPage   = errors.New("invalid pagination")
)
