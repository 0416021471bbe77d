package usecase

// Fixed page sizes across the application's listings.
const (
	PageSizeSearch       = 25
	PageSizeManage       = 12
	PageSizeApplications = 15
	PageSizeInterviews   = 12
)

// paginate slices one 1-based page out of items and returns it with the
// total count. An out-of-range page yields an empty slice, not an error.
func paginate[T any](items []T, page, size int) ([]T, int) {
	total := len(items)
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return []T{}, total
	}

	start := (page - 1) * size
	if start >= total {
		return []T{}, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return items[start:end], total
}
