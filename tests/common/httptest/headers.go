//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertHeaderPresent checks that each header is set to a non-empty value.
func AssertHeaderPresent(t *testing.T, w *httptest.ResponseRecorder, names ...string) {
	t.Helper()
	for _, name := range names {
		assert.NotEmpty(t, w.Header().Get(name), "header %s missing", name)
	}
}

// AssertNoCookie checks that the response does not set or clear the named cookie.
func AssertNoCookie(t *testing.T, w *httptest.ResponseRecorder, name string) {
	t.Helper()
	assert.Nil(t, ExtractCookie(w, name), "cookie %s unexpectedly set", name)
}
