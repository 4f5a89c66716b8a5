package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/cronhuman/internal/pkg/errors"
	"github.com/darkkaiser/cronhuman/internal/service/api/constants"
	"github.com/darkkaiser/cronhuman/internal/service/api/model/response"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 핸들러가 AppError를 그대로 반환한 경우 에러 타입에 맞는 상태 코드로 변환합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolve 에러로부터 HTTP 상태 코드와 클라이언트에게 보여줄 메시지를 결정합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}

		switch he.Code {
		case http.StatusNotFound:
			// 라우터의 기본 404 메시지("Not Found")만 한국어로 통일
			if message == http.StatusText(http.StatusNotFound) {
				message = constants.ErrMsgNotFound
			}
		case http.StatusRequestEntityTooLarge:
			message = constants.ErrMsgRequestEntityTooLarge
		case http.StatusServiceUnavailable:
			if message == http.StatusText(http.StatusServiceUnavailable) {
				message = constants.ErrMsgServiceUnavailable
			}
		}
		return he.Code, message
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type() {
		case apperrors.InvalidInput, apperrors.ParsingFailed:
			return http.StatusBadRequest, appErr.Message()
		case apperrors.NotFound:
			return http.StatusNotFound, appErr.Message()
		case apperrors.Unavailable:
			return http.StatusServiceUnavailable, appErr.Message()
		}
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}
