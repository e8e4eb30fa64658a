package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned when the city query is blank.
	ErrEmptyQuery = errors.New("empty city query")
	// ErrMissingKey is returned when no API key is configured.
	ErrMissingKey = errors.New("missing api key")
	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("city not found")
	// ErrUnauthorized is returned for HTTP 401.
	ErrUnauthorized = errors.New("invalid api key")
)

// TransportError covers network failures and any other non-success status.
type TransportError struct {
	StatusCode int // zero when the request never got a response
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch weather: status %d", e.StatusCode)
	}
	return fmt.Sprintf("fetch weather: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsValidation reports whether err was raised before any request was made.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyQuery) || errors.Is(err, ErrMissingKey)
}

// Message maps an error from Current to the single line shown on the card.
func Message(err error) string {
	var te *TransportError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyQuery):
		return "Please enter a city name."
	case errors.Is(err, ErrMissingKey):
		return "Missing API key. Set OPENWEATHER_API_KEY in .env."
	case errors.Is(err, ErrNotFound):
		return "City not found."
	case errors.Is(err, ErrUnauthorized):
		return "Invalid API key (401)."
	case errors.As(err, &te):
		return "Failed to fetch weather."
	}
	return "Something went wrong."
}
