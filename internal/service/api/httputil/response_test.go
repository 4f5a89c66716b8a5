package httputil

import (
	"net/http"
	"testing"

	"github.com/darkkaiser/cronhuman/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       func(string) error
		wantCode int
	}{
		{"BadRequest", NewBadRequestError, http.StatusBadRequest},
		{"NotFound", NewNotFoundError, http.StatusNotFound},
		{"UnsupportedMediaType", NewUnsupportedMediaTypeError, http.StatusUnsupportedMediaType},
		{"TooManyRequests", NewTooManyRequestsError, http.StatusTooManyRequests},
		{"InternalServer", NewInternalServerError, http.StatusInternalServerError},
		{"ServiceUnavailable", NewServiceUnavailableError, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.fn("메시지")

			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, he.Code)
			assert.Equal(t, response.ErrorResponse{ResultCode: tt.wantCode, Message: "메시지"}, he.Message)
		})
	}
}
