package handler

// normalizePage applies the same defaults the repositories apply, so
// pagination metadata matches the page that was actually queried.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
