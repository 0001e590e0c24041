//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hotel-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorBody is httperr.Response with the detail typed for binding failures.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail []httperr.FieldError `json:"detail"`
}

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		_ = DecodeResponseBody(t, bytes.NewBuffer(w.Body.Bytes()), target)
	}
}

// AssertErrorResponse checks the status and that error.message contains expectedMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	body := decodeError(t, w)
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg, "error message mismatch")
	}
}

// AssertFieldErrors checks a 400 binding failure names exactly the given fields.
func AssertFieldErrors(t *testing.T, w *httptest.ResponseRecorder, fields ...string) {
	t.Helper()

	assert.Equal(t, 400, w.Code, "unexpected status, body: %s", w.Body.String())
	body := decodeError(t, w)
	got := make([]string, 0, len(body.Detail))
	for _, fe := range body.Detail {
		got = append(got, fe.Field)
	}
	assert.ElementsMatch(t, fields, got)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "error response is not JSON: %s", w.Body.String())
	return body
}
