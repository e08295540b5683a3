package errors

// Errors without a status code answer as 500 at the gateway edge.
// Anything that should map to a different code carries it explicitly.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}
