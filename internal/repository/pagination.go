package repository

// Offset для постраничной выборки, page начинается с 1.
func Offset(page, limit int) uint64 {
	if page < 1 || limit < 1 {
		return 0
	}
	return uint64((page - 1) * limit)
}
