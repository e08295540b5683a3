package apiclient

import "net/http"

// GetDashboard fetches the dashboard handler payload.
func (c *Client) GetDashboard(opts *RequestOptions) (*http.Response, error) {
	return c.do(http.MethodGet, "/api/dashboard", nil, opts, false)
}

// GetPage fetches a custom page by name. The method can be overridden
// through the request options, matching the page handler contract.
func (c *Client) GetPage(name string, opts *RequestOptions) (*http.Response, error) {
	return c.do(http.MethodGet, "/api/pages/"+name, nil, opts, false)
}
