package pagination

// PageSize is the number of items requested from the hub per page.
// Clients cannot change it.
const PageSize = 12

// CursorParam is the query parameter carrying the opaque cursor, both inbound and upstream.
const CursorParam = "max_id"
