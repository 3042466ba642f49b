package shared

// Page sizes used by the listing endpoints.
const (
	BookPageSize      = 12
	ForumPostPageSize = 10
)

// Page is the resolved position inside a paginated listing.
type Page struct {
	Number      int   `json:"page"`
	Size        int   `json:"page_size"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// Offset is the number of rows to skip to reach this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Paginate resolves the requested page against total rows. Pages below 1
// become 1 and pages past the end become the last page, so the result is
// always a valid page (page 1 of 1 for an empty listing).
func Paginate(total int64, requested, size int) Page {
	if size < 1 {
		size = 1
	}
	if total < 0 {
		total = 0
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:      number,
		Size:        size,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}
