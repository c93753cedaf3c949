package request

import "fmt"

// HTTPError is returned when the exchange replies with an unsuccessful HTTP
// status code. Message carries the error field of the response body when one
// was present.
type HTTPError struct {
	StatusCode int
	Status     string
	Message    string
	Body       []byte
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unsuccessful HTTP status code: %d, error: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("unsuccessful HTTP status code: %d, raw response: %s", e.StatusCode, e.Body)
}

// RemoteError is returned when a well-formed 2xx response body reports a
// failure through its error field.
type RemoteError struct {
	Message string
	Body    []byte
}

func (e *RemoteError) Error() string {
	return e.Message
}
