package catalog

import "cellar/internal/model"

// DefaultPageSize is the number of wines shown per page.
const DefaultPageSize = 12

// Page returns the 1-based page of wines for the given page size. A page
// beyond the end of the list yields an empty slice; keeping the page number
// in range is the caller's job.
func Page(wines []model.Wine, page, pageSize int) []model.Wine {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(wines) {
		return nil
	}
	end := start + pageSize
	if end > len(wines) {
		end = len(wines)
	}
	return wines[start:end]
}

// TotalPages returns how many pages the list occupies at the given size.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
