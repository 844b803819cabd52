package client

import "fmt"

// SendResult is a completed HTTP exchange with the gateway, whatever the
// status code was.
type SendResult struct {
	StatusCode int
	Body       []byte
}

// StatusText renders the result the way it is shown to the user:
// "<code>: <body>".
func (r SendResult) StatusText() string {
	return fmt.Sprintf("%d: %s", r.StatusCode, r.Body)
}
