//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// IdempotencyHeaders returns request headers carrying a fresh Idempotency-Key
// and the key itself.
func IdempotencyHeaders() (map[string]string, uuid.UUID) {
	key := uuid.New()
	return map[string]string{"Idempotency-Key": key.String()}, key
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertRequestID checks the response echoes a request id and returns it.
func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	id := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, id, "response is missing X-Request-ID")
	return id
}
