package model

// Pageable describes a 0-indexed page request.
type Pageable struct {
	Page int
	Size int
}

func (p Pageable) Offset() int { return p.Page * p.Size }
func (p Pageable) Limit() int  { return p.Size }

// Page is one page of results together with the total row count, so
// clients can compute the number of pages themselves.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

func NewPage[T any](content []T, p Pageable, total int64) Page[T] {
	pages := 0
	if p.Size > 0 {
		pages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// MapPage converts a page's content, keeping the paging metadata.
func MapPage[T, U any](page Page[T], f func(T) U) Page[U] {
	content := make([]U, 0, len(page.Content))
	for _, item := range page.Content {
		content = append(content, f(item))
	}
	return Page[U]{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}
