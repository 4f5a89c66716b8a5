package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiting_InvalidArguments(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: 0)", func() {
		RateLimiting(0, 1)
	})
	assert.PanicsWithValue(t, "RateLimiting: burst는 양수여야 합니다 (현재값: -1)", func() {
		RateLimiting(1, -1)
	})
}

func TestRateLimiting(t *testing.T) {
	t.Parallel()

	e := echo.New()
	h := RateLimiting(0.001, 2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	call := func(ip string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		return rec, h(e.NewContext(req, rec))
	}

	// 버스트 허용량까지는 통과
	for i := 0; i < 2; i++ {
		rec, err := call("10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// 초과 요청은 429
	rec, err := call("10.0.0.1")
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, he.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// 다른 IP는 독립적으로 제한
	_, err = call("10.0.0.2")
	assert.NoError(t, err)
}

func TestIPRateLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter.getLimiter("192.168.0.1")
		}()
	}
	wg.Wait()

	assert.Len(t, limiter.limiters, 1)
}
