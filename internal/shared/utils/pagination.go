package utils

// ClampPage clamps an out-of-range page number to the nearest valid page
// instead of erroring: below 1 becomes the first page, beyond the last page
// becomes the last page.
func ClampPage(page int, total int64, pageSize int) int {
	if page < 1 {
		return 1
	}
	last := TotalPages(total, pageSize)
	if page > last {
		return last
	}
	return page
}

// TotalPages calculates total pages for a given total count. An empty
// collection still has one (empty) page.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}
