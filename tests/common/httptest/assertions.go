//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode response JSON: %s", w.Body.String())
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()
	AssertErrorResponseWithDetail(t, w, expectedStatus, expectedErrorMsg, nil)
}

// AssertErrorResponseWithDetail also decodes the "detail" member into
// detail when it is non-nil. Booking failures put the terminal attempt there.
func AssertErrorResponseWithDetail(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string, detail any) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var env errorEnvelope
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "failed to decode error JSON: %s", w.Body.String()) {
		return
	}
	if expectedErrorMsg != "" {
		assert.Contains(t, env.Error.Message, expectedErrorMsg, "error message mismatch")
	}
	if detail != nil {
		if assert.NotEmpty(t, env.Detail, "error response has no detail") {
			assert.NoError(t, json.Unmarshal(env.Detail, detail), "failed to decode error detail: %s", string(env.Detail))
		}
	}
}
