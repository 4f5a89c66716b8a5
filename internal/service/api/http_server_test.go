package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestNewHTTPServer_Configuration(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{Debug: true, AllowOrigins: []string{"*"}})

	assert.True(t, e.Debug)
	assert.True(t, e.HideBanner)
	assert.NotNil(t, e.HTTPErrorHandler)
	assert.Equal(t, 15*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, e.Server.IdleTimeout)
}

func TestNewHTTPServer_Middleware(t *testing.T) {
	t.Parallel()

	newServer := func(cfg HTTPServerConfig) *echo.Echo {
		e := NewHTTPServer(cfg)
		e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
		e.GET("/panic", func(c echo.Context) error { panic("boom") })
		e.POST("/echo", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
		return e
	}

	t.Run("보안 헤더와 Request ID", func(t *testing.T) {
		t.Parallel()

		e := newServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
	})

	t.Run("panic은 500으로 변환", func(t *testing.T) {
		t.Parallel()

		e := newServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "내부 서버 오류가 발생했습니다", gjson.Get(rec.Body.String(), "message").String())
	})

	t.Run("본문 크기 초과는 413", func(t *testing.T) {
		t.Parallel()

		e := newServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("a", 3<<20)))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "요청 본문이 너무 큽니다", gjson.Get(rec.Body.String(), "message").String())
	})

	t.Run("요청 제한 초과는 429", func(t *testing.T) {
		t.Parallel()

		e := newServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestsPerSecond: 0.001, Burst: 1})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("CORS Preflight", func(t *testing.T) {
		t.Parallel()

		e := newServer(HTTPServerConfig{AllowOrigins: []string{"https://example.com"}})
		req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
		req.Header.Set(echo.HeaderOrigin, "https://example.com")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "GET,POST", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	})
}
