package format

import "strconv"

const Ellipsis = "..."

// GeneratePagination returns the page labels for a pagination control.
// Gaps are represented by Ellipsis.
func GeneratePagination(currentPage, totalPages int) []string {
	if totalPages <= 0 {
		return []string{}
	}

	// Few pages: show them all
	if totalPages <= 7 {
		return pageRange(1, totalPages)
	}

	// Near the start
	if currentPage <= 3 {
		return []string{"1", "2", "3", Ellipsis, itoa(totalPages - 1), itoa(totalPages)}
	}

	// Near the end
	if currentPage >= totalPages-2 {
		return []string{"1", "2", Ellipsis, itoa(totalPages - 2), itoa(totalPages - 1), itoa(totalPages)}
	}

	return []string{
		"1",
		Ellipsis,
		itoa(currentPage - 1),
		itoa(currentPage),
		itoa(currentPage + 1),
		Ellipsis,
		itoa(totalPages),
	}
}

func pageRange(from, to int) []string {
	pages := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		pages = append(pages, itoa(i))
	}
	return pages
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
