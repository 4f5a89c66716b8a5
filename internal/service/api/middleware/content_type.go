package middleware

import (
	"mime"
	"strings"

	"github.com/darkkaiser/cronhuman/internal/service/api/constants"
	"github.com/darkkaiser/cronhuman/internal/service/api/httputil"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
	"github.com/labstack/echo/v4"
)

// ValidateContentType 요청 본문의 Content-Type이 expected와 일치하는지 검증하는 미들웨어를 반환합니다.
// 본문이 없는 요청은 검증하지 않으며, 불일치 시 415 Unsupported Media Type을 응답합니다.
func ValidateContentType(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			contentType := req.Header.Get(echo.HeaderContentType)
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || !strings.EqualFold(mediaType, expected) {
				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"method":     req.Method,
					"path":       req.URL.Path,
					"expected":   expected,
					"actual":     contentType,
					"remote_ip":  c.RealIP(),
				}).Warn(constants.LogMsgUnsupportedMediaType)

				return httputil.NewUnsupportedMediaTypeError(constants.ErrMsgUnsupportedMediaType)
			}

			return next(c)
		}
	}
}
