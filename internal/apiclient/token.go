package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/panelgate-dev/panelgate/internal/cookies"
	"github.com/panelgate-dev/panelgate/internal/domain"
	"github.com/panelgate-dev/panelgate/internal/utils"
)

// GetToken returns the current CSRF token. A cookie-resident token is
// trusted as-is; a missing cookie triggers a single fetch from the token
// endpoint and the result is cached under the endpoint's own max-age.
//
// Concurrent callers may race the read-then-write on the shared cookie
// store; the last write wins, same as racing tabs over one cookie jar.
func (c *Client) GetToken() (string, error) {
	if value, ok := c.cookies.Get(c.cookieName); ok {
		return value, nil
	}

	token, err := c.fetchToken()
	if err != nil {
		return "", fmt.Errorf("failed to fetch CSRF token: %w", err)
	}

	c.cookies.Set(c.cookieName, token.Sk, cookies.Options{
		Path:   "/",
		MaxAge: token.MaxAgeSeconds,
	})
	return token.Sk, nil
}

func (c *Client) fetchToken() (*domain.CsrfToken, error) {
	tokenURL := strings.TrimSuffix(c.env.Origin(), "/") + c.tokenEndpoint

	resp, err := c.tokenClient.Get(tokenURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var token domain.CsrfToken
	if err := utils.DecodeValidate(resp.Body, &token); err != nil {
		return nil, fmt.Errorf("cannot decode token response: %w", err)
	}
	return &token, nil
}

func decodeBody(r io.Reader, body any) error {
	return json.NewDecoder(r).Decode(body)
}
