// Package pagination maps page numbers onto upstream result offsets and
// tracks the page count derived from upstream result totals. Out-of-range
// requests are clamped into [1, total], never rejected.
package pagination

// Direction selects which way a navigation request moves.
type Direction string

const (
	Next Direction = "next"
	Prev Direction = "prev"
)

// Valid reports whether d is a recognized direction.
func (d Direction) Valid() bool {
	return d == Next || d == Prev
}

// OffsetForPage returns the zero-based upstream offset of the first item on
// the given page.
func OffsetForPage(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// UpdateTotalPages derives the page count from an upstream result total.
// A zero or unknown total keeps the previously recorded count so the page
// range never shrinks mid-session; the count never drops below 1.
func UpdateTotalPages(totalResults, pageSize, prev int) int {
	if prev < 1 {
		prev = 1
	}
	if totalResults <= 0 || pageSize <= 0 {
		return prev
	}
	pages := (totalResults + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Navigate moves one page in the given direction, clamped to [1, totalPages].
func Navigate(currentPage, totalPages int, direction Direction) int {
	if totalPages < 1 {
		totalPages = 1
	}
	target := currentPage
	switch direction {
	case Next:
		target = currentPage + 1
	case Prev:
		target = currentPage - 1
	}
	if target < 1 {
		target = 1
	}
	if target > totalPages {
		target = totalPages
	}
	return target
}

// Clamp forces an arbitrary requested page into the valid range.
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages >= 1 && page > totalPages {
		return totalPages
	}
	return page
}
