package apiclient

import (
	"net/http"
	"net/url"
)

// RequestOptions are per-call transport overrides, forwarded as-is. An
// explicit Method wins over the derived one; Headers are merged into the
// outgoing request.
type RequestOptions struct {
	Method  string
	Headers http.Header
}

// ResourceActionParams target a named action on a resource type. A non-nil
// Data makes the call mutating. Query is appended to the action path as an
// URL-encoded segment; Params become the query string.
type ResourceActionParams struct {
	ResourceID string
	ActionName string
	Query      string
	Params     url.Values
	Data       any
}

// RecordActionParams target an action on a single record.
type RecordActionParams struct {
	ResourceID string
	RecordID   string
	ActionName string
	Data       any
}

// BulkActionParams target an action on a set of records. RecordIDs are
// joined by comma into the recordIds query parameter.
type BulkActionParams struct {
	ResourceID string
	RecordIDs  []string
	ActionName string
	Data       any
}
