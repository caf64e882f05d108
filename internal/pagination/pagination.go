// Package pagination computes page counts, navigation and the window of page
// buttons shown under a product listing.
package pagination

const (
	// PageSize is the number of products per listing page
	PageSize = 9
	// WindowSize is the number of page buttons shown at once
	WindowSize = 5
)

// TotalPages returns ceil(totalItems/pageSize), 0 for an empty catalog
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// GoToPage returns requested and true when it lies in [1,totalPages].
// Out-of-range requests are rejected, not clamped: current is returned with false.
func GoToPage(current, requested, totalPages int) (int, bool) {
	if requested < 1 || requested > totalPages {
		return current, false
	}
	return requested, true
}

// Offset returns the number of items skipped before page
func Offset(page, pageSize int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * pageSize
}

// VisiblePageNumbers returns the page buttons to show for current.
// The window keeps current centred when it can and sits flush against either end
// otherwise.
func VisiblePageNumbers(current, totalPages, windowSize int) []int {
	if totalPages <= 0 || windowSize <= 0 {
		return []int{}
	}
	if totalPages <= windowSize {
		return pageRange(1, totalPages)
	}

	half := windowSize / 2
	switch {
	case current <= half+1:
		return pageRange(1, windowSize)
	case current >= totalPages-half:
		return pageRange(totalPages-windowSize+1, totalPages)
	default:
		start := current - half
		return pageRange(start, start+windowSize-1)
	}
}

func pageRange(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}

// PageState tracks the listing position of a browsing session
type PageState struct {
	CurrentPage int
	TotalItems  int
	PageSize    int
}

// NewPageState starts on page 1 with an unknown (zero) total
func NewPageState(pageSize int) PageState {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	return PageState{CurrentPage: 1, PageSize: pageSize}
}

func (s PageState) TotalPages() int {
	return TotalPages(s.TotalItems, s.PageSize)
}

func (s PageState) Offset() int {
	return Offset(s.CurrentPage, s.PageSize)
}

// GoTo moves to page if it is in range and reports whether it did
func (s *PageState) GoTo(page int) bool {
	next, ok := GoToPage(s.CurrentPage, page, s.TotalPages())
	s.CurrentPage = next
	return ok
}

// Window returns the page buttons for the current position
func (s PageState) Window() []int {
	return VisiblePageNumbers(s.CurrentPage, s.TotalPages(), WindowSize)
}

func (s PageState) HasPrev() bool {
	return s.CurrentPage > 1
}

func (s PageState) HasNext() bool {
	return s.CurrentPage < s.TotalPages()
}
