package httputil

import (
	"net/http"
	"time"
)

// UserAgent is sent on every outbound request.
const UserAgent = "weathercard/1.0"

// NewClient returns an HTTP client with the given timeout. A zero timeout
// leaves the request bounded only by its context.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
