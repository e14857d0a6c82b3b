package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// AirtableError represents an error response from the Airtable API.
type AirtableError struct {
	StatusCode int    `json:"statusCode"`
	ErrorType  string `json:"type,omitempty"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *AirtableError) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("airtable error [%s]: %s (status %d)", e.ErrorType, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("airtable error: %s (status %d)", e.Message, e.StatusCode)
}

// IsAirtableStatus checks if an error is an AirtableError with the given
// HTTP status code.
func IsAirtableStatus(err error, statusCode int) bool {
	if apiErr, ok := err.(*AirtableError); ok {
		return apiErr.StatusCode == statusCode
	}
	return false
}

// decodeAPIError builds an AirtableError from a non-2xx API response. The
// "error" member of the body is either an object with type and message or
// a bare string code; anything else falls back to the raw body.
func decodeAPIError(resp *http.Response) error {
	apiErr := &AirtableError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && len(envelope.Error) > 0 {
		var detail struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if json.Unmarshal(envelope.Error, &detail) == nil && (detail.Type != "" || detail.Message != "") {
			apiErr.ErrorType = detail.Type
			apiErr.Message = detail.Message
		} else {
			var code string
			if json.Unmarshal(envelope.Error, &code) == nil {
				apiErr.ErrorType = code
			}
		}
	}

	if apiErr.ErrorType == "" && apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
