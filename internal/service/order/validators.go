package order

const (
	DefaultLimit = 6
	MaxLimit     = 100
)

func normalizePage(limit, page int) (int, int, error) {
	if limit < 0 || page < 0 {
		return 0, 0, ErrInvalidPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page == 0 {
		page = 1
	}
	return limit, page, nil
}
