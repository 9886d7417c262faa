//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the success body; Data is decoded by the caller.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message,omitempty"`
	Count      *int            `json:"count,omitempty"`
	Pagination *struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
		Count  int `json:"count"`
	} `json:"pagination,omitempty"`
}

// ErrorBody mirrors the failure body.
type ErrorBody struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Message string         `json:"message,omitempty"`
	Details []string       `json:"details,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Stack   []string       `json:"stack,omitempty"`
}

// AssertSuccessResponse checks the status and envelope, then decodes data into target when given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) Envelope {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to decode response JSON: %s", w.Body.String())
	assert.True(t, env.Success, "success flag should be true")

	if target != nil {
		require.NoError(t, json.Unmarshal(env.Data, target), "Failed to decode data: %s", string(env.Data))
	}
	return env
}

// AssertErrorResponse checks the status and that the error field contains expectedError.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedError string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Failed to decode error response JSON: %s", w.Body.String())
	assert.False(t, body.Success, "success flag should be false")

	if expectedError != "" {
		assert.Contains(t, body.Error, expectedError, "Response error doesn't contain expected text")
	}
	return body
}
