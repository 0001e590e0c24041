//go:build unit

package middleware_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (r *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observation{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	observer := &recordingObserver{}
	router := gin.New()
	router.Use(middleware.MetricsMiddleware(observer))
	router.GET("/rooms/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	httptest.PerformRequest(t, router, http.MethodGet, "/rooms/123", nil, "")
	httptest.PerformRequest(t, router, http.MethodGet, "/nowhere", nil, "")

	require.Len(t, observer.seen, 2)
	assert.Equal(t, observation{method: http.MethodGet, route: "/rooms/:id", status: http.StatusOK}, observer.seen[0])
	assert.Equal(t, observation{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound}, observer.seen[1])
}
