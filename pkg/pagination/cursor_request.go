package pagination

// CursorRequest represents a cursor-based pagination request
type CursorRequest struct {
	Cursor string `query:"max_id"`
}

// Page returns the cursor to forward upstream and the fixed page size.
// An empty cursor means the first page.
func (r *CursorRequest) Page() (*string, int) {
	if r.Cursor == "" {
		return nil, PageSize
	}
	c := r.Cursor
	return &c, PageSize
}
