// Package v1 /api/v1 경로 하위의 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET  /api/v1/describe        - Cron 표현식 하나 해석
//   - POST /api/v1/describe        - Cron 표현식 일괄 해석
//   - GET  /api/v1/schedules       - 등록된 스케줄 목록
//   - GET  /api/v1/schedules/:id   - 스케줄 상세
package v1

import (
	"github.com/darkkaiser/cronhuman/internal/service/api/middleware"
	"github.com/darkkaiser/cronhuman/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	g := e.Group("/api/v1")

	g.GET("/describe", h.DescribeHandler)
	g.POST("/describe", h.DescribeBatchHandler,
		middleware.ValidateContentType(echo.MIMEApplicationJSON),
	)

	g.GET("/schedules", h.ListSchedulesHandler)
	g.GET("/schedules/:id", h.GetScheduleHandler)
}
