package pagination

// CursorResult is the page envelope returned to clients.
// MaxID is null once the upstream reports no further pages.
type CursorResult[T any] struct {
	MaxID *string `json:"maxId"`
	Data  []T     `json:"data"`
}

// NewCursorResult creates a new cursor-based result.
// Items keep their order; a nil slice is reported as an empty list.
func NewCursorResult[T any](items []T, next *string) *CursorResult[T] {
	if items == nil {
		items = []T{}
	}

	return &CursorResult[T]{
		MaxID: next,
		Data:  items,
	}
}
