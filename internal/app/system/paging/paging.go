// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged lists.
const PageSize = 50

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Pager describes one page of an offset-paged list.
type Pager struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int

	HasPrev  bool
	HasNext  bool
	PrevPage int
	NextPage int

	// 1-based display range; both 0 when the page is empty.
	RangeStart int
	RangeEnd   int
}

// New builds a Pager for page (1-based) of total rows. A page past the
// end is clamped to the last page. pageSize <= 0 means PageSize.
func New(page, pageSize int, total int64) Pager {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	if page < 1 {
		page = 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	if page > pages {
		page = pages
	}

	p := Pager{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
		PrevPage:   max(page-1, 1),
		NextPage:   min(page+1, pages),
	}
	if total > 0 {
		p.RangeStart = p.Offset() + 1
		p.RangeEnd = int(min(int64(p.Offset()+pageSize), total))
	}
	return p
}

// Offset is the number of rows to skip to reach this page.
func (p Pager) Offset() int {
	return (p.Page - 1) * p.PageSize
}
