// Package pagination defines the paged result envelope shared by all list
// endpoints.
package pagination

// Result wraps one page of items plus the total count of the unbounded
// filtered set. Invariants: len(Items) <= PageSize and TotalCount >=
// len(Items).
type Result[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func NewResult[T any](items []T, total int64, page, pageSize int) *Result[T] {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return &Result[T]{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
