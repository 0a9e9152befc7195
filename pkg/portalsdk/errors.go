package portalsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the error shape the server returns for every failed request:
// a JSON body with a single "error" field. It implements the error interface
// so SDK callers can inspect the status code and message.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("portal api: %d %s", e.StatusCode, e.Message)
}

// parseErrorResponse converts a non-success response body into an *APIError.
// Bodies that are not the expected JSON shape still produce a usable error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
