package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyQuery is returned when a search is attempted with no query
var ErrEmptyQuery = errors.New("empty search query")

// ErrEmptyArtistID is returned when a top-tracks lookup has no artist id
var ErrEmptyArtistID = errors.New("empty artist id")

// APIError is a non-2xx response from the catalog
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog status %d", e.Status)
	}
	return fmt.Sprintf("catalog status %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether the token was rejected
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// errorBody is the catalog's error object
type errorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// decodeAPIError reads an error response. Bodies that are not the catalog's
// error object still produce an APIError with the HTTP status.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error.Message != "" {
		apiErr.Message = eb.Error.Message
	}
	return apiErr
}
