//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// AssertSuccessResponse checks the status and, for 2xx answers, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "undecodable error body: %s", w.Body.String())
	return body
}

// AssertErrorResponse checks the status and that the error message contains msg (skipped when empty).
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	body := decodeError(t, w)
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
}

// AssertErrorCode checks the status and the machine-readable error code.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, code string) {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	assert.Equal(t, code, decodeError(t, w).Error.Code)
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equalf(t, v, w.Header().Get(k), "header %s", k)
	}
}
