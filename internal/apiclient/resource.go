package apiclient

import (
	"fmt"
	"net/http"
	"net/url"
)

// ResourceAction invokes a named action on a resource type. A non-nil
// payload selects POST and attaches the CSRF header, otherwise the call is a
// plain GET.
func (c *Client) ResourceAction(params ResourceActionParams, opts *RequestOptions) (*http.Response, error) {
	path := fmt.Sprintf("/api/resources/%s/actions/%s", params.ResourceID, params.ActionName)
	if params.Query != "" {
		path += "/" + url.PathEscape(params.Query)
	}
	if len(params.Params) > 0 {
		path += "?" + params.Params.Encode()
	}

	method := http.MethodGet
	if params.Data != nil {
		method = http.MethodPost
	}
	return c.do(method, path, params.Data, opts, params.Data != nil)
}

// RecordAction invokes an action on a single record, with the same method
// selection and CSRF rule as ResourceAction.
func (c *Client) RecordAction(params RecordActionParams, opts *RequestOptions) (*http.Response, error) {
	path := fmt.Sprintf("/api/resources/%s/records/%s/%s",
		params.ResourceID, params.RecordID, params.ActionName)

	method := http.MethodGet
	if params.Data != nil {
		method = http.MethodPost
	}
	return c.do(method, path, params.Data, opts, params.Data != nil)
}
