package ports

// DefaultPageSize is used when a caller supplies a non-positive page size.
const DefaultPageSize = 10

// NormalizePage clamps paging parameters to usable values: pages start at 1
// and a non-positive page size falls back to DefaultPageSize. Both storage
// backends share this helper so paged reads behave identically everywhere.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// TotalPages derives the page count for a paged result.
func TotalPages(totalCount int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	pages := totalCount / int64(pageSize)
	if totalCount%int64(pageSize) != 0 {
		pages++
	}
	return int(pages)
}
