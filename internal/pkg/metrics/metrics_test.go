//go:build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("正常系: 予約作成とキャンセルがカウントされる", func(t *testing.T) {
		m := New()

		m.IncBookingCreated("confirmed")
		m.IncBookingCreated("confirmed")
		m.IncBookingCanceled()
		m.IncBookingConflict()

		assert.InDelta(t, 2, testutil.ToFloat64(m.bookingCreated.WithLabelValues("confirmed")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.bookingCanceled), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.bookingConflict), 0)
	})

	t.Run("正常系: インスタンスごとにレジストリが独立している", func(t *testing.T) {
		a := New()
		b := New()

		a.IncBookingCanceled()

		assert.InDelta(t, 0, testutil.ToFloat64(b.bookingCanceled), 0)
	})

	t.Run("正常系: /metrics ハンドラが記録済みの値を出力する", func(t *testing.T) {
		m := New()
		m.ObserveHTTP(http.MethodGet, "/api/rooms/:id", http.StatusOK, 20*time.Millisecond)

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "hotel_booking_http_request_duration_seconds")
		assert.Contains(t, rec.Body.String(), `route="/api/rooms/:id"`)
	})
}
