package cookies

import (
	"net/http"
	"strconv"
	"strings"
)

// Serialize renders a cookie in Set-Cookie wire form. The path defaults to
// "/", date-valued attributes use the UTC wire format and boolean attributes
// are written as bare flags without a value.
func Serialize(name, value string, opts Options) string {
	path := opts.Path
	if path == "" {
		path = "/"
	}

	parts := []string{name + "=" + value, "Path=" + path}
	if !opts.Expires.IsZero() {
		parts = append(parts, "Expires="+opts.Expires.UTC().Format(http.TimeFormat))
	}
	if opts.MaxAge != 0 {
		parts = append(parts, "Max-Age="+strconv.Itoa(opts.MaxAge))
	}
	if opts.Secure {
		parts = append(parts, "Secure")
	}
	if opts.HttpOnly {
		parts = append(parts, "HttpOnly")
	}
	return strings.Join(parts, "; ")
}
