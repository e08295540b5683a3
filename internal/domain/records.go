package domain

// RecordJSON is the backend's wire representation of a single record.
// The client never inspects Params beyond carrying them through.
type RecordJSON struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Params map[string]any `json:"params,omitempty"`
}

// SearchResponse is the body of the built-in resource "search" action.
type SearchResponse struct {
	Records []RecordJSON `json:"records"`
}
