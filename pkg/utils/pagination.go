package utils

import "math"

// PageResult is the envelope returned by every paginated listing. NextPage is
// nil on the last page so template code can stop rendering "load more" links.
type PageResult[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	NextPage   *int  `json:"nextPage"`
	TotalPages int   `json:"totalPages"`
	TotalItems int64 `json:"totalItems"`
}

// ClampPage normalizes page and pageSize. Values below 1 are clamped to
// defaults rather than rejected; callers get a consistent first page.
func ClampPage(page, pageSize, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	return page, pageSize
}

// TotalPages returns ceil(totalItems / pageSize), 0 when there are no items.
func TotalPages(totalItems int64, pageSize int) int {
	if totalItems <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(pageSize)))
}

// NewPageResult assembles the result envelope for one page of data.
func NewPageResult[T any](data []T, page, pageSize int, totalItems int64) *PageResult[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := TotalPages(totalItems, pageSize)
	res := &PageResult[T]{
		Data:       data,
		Page:       page,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
	if page < totalPages {
		next := page + 1
		res.NextPage = &next
	}
	return res
}
