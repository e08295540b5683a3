package apiclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// BulkAction invokes an action on a set of records. The original wire
// behavior is kept on purpose: an explicit method override counts as
// mutating even without a payload, so it triggers POST and the CSRF header.
// An empty id list still produces recordIds= with an empty value.
func (c *Client) BulkAction(params BulkActionParams, opts *RequestOptions) (*http.Response, error) {
	mutating := params.Data != nil || (opts != nil && opts.Method != "")

	query := url.Values{}
	query.Set("recordIds", strings.Join(params.RecordIDs, ","))
	path := fmt.Sprintf("/api/resources/%s/bulk/%s?%s",
		params.ResourceID, params.ActionName, query.Encode())

	method := http.MethodGet
	if mutating {
		method = http.MethodPost
	}
	return c.do(method, path, params.Data, opts, mutating)
}
