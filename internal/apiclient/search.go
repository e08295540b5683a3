package apiclient

import (
	"fmt"
	"net/url"

	"github.com/panelgate-dev/panelgate/internal/domain"
)

// SearchRecords runs the built-in "search" action against a resource and
// unwraps the matched records. Headless hosts get an empty result without a
// network round trip.
func (c *Client) SearchRecords(resourceID, query, searchProperty string) ([]domain.RecordJSON, error) {
	if c.env.ServerContext() {
		return []domain.RecordJSON{}, nil
	}

	params := ResourceActionParams{
		ResourceID: resourceID,
		ActionName: "search",
		Query:      query,
	}
	if searchProperty != "" {
		params.Params = url.Values{"searchProperty": {searchProperty}}
	}

	resp, err := c.ResourceAction(params, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var response domain.SearchResponse
	if err := decodeBody(resp.Body, &response); err != nil {
		return nil, fmt.Errorf("cannot decode search response: %w", err)
	}
	if response.Records == nil {
		response.Records = []domain.RecordJSON{}
	}
	return response.Records, nil
}
