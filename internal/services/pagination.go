package services

// CursorPage is one page of a descending-id paging session. NextCursor is
// the id of the last returned row; passing it back yields rows strictly
// below it, so pages never overlap and rows inserted mid-session (which
// get higher ids) never show up in later pages.
type CursorPage[T any] struct {
	Content    []T   `json:"content"`
	NextCursor *uint `json:"next_cursor,omitempty"`
	HasMore    bool  `json:"has_more"`
}

const defaultPageSize = 10

// clampPageSize normalizes caller-supplied page sizes.
func clampPageSize(size int) int {
	if size < 1 {
		return defaultPageSize
	}
	return size
}

// buildCursorPage folds a limit+1 fetch into a page. rows must be ordered
// by id descending; id extracts the cursor key from a row.
func buildCursorPage[T any](rows []T, pageSize int, id func(T) uint) CursorPage[T] {
	hasMore := len(rows) > pageSize
	if hasMore {
		rows = rows[:pageSize]
	}

	page := CursorPage[T]{Content: rows, HasMore: hasMore}
	if len(rows) > 0 {
		last := id(rows[len(rows)-1])
		page.NextCursor = &last
	}
	if page.Content == nil {
		page.Content = []T{}
	}
	return page
}
