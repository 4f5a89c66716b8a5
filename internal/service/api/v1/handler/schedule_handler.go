package handler

import (
	"net/http"

	"github.com/darkkaiser/cronhuman/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// ListSchedulesHandler godoc
// @Summary 등록된 스케줄 목록
// @Description 설정 파일에 등록된 스케줄을 제목 순으로 정렬하여 해석 결과와 함께 반환합니다.
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.ScheduleListResponse "스케줄 목록"
// @Router /api/v1/schedules [get]
func (h *Handler) ListSchedulesHandler(c echo.Context) error {
	schedules := h.catalog.List()

	return c.JSON(http.StatusOK, response.ScheduleListResponse{
		Count:     len(schedules),
		Schedules: schedules,
	})
}

// GetScheduleHandler godoc
// @Summary 스케줄 상세
// @Description ID에 해당하는 스케줄 하나를 해석 결과와 함께 반환합니다.
// @Tags Schedule
// @Produce json
// @Param id path string true "스케줄 ID"
// @Success 200 {object} catalog.Entry "스케줄"
// @Failure 404 {object} response.ErrorResponse "등록되지 않은 스케줄"
// @Router /api/v1/schedules/{id} [get]
func (h *Handler) GetScheduleHandler(c echo.Context) error {
	entry, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		// NotFound AppError는 전역 에러 핸들러가 404로 변환합니다.
		return err
	}

	return c.JSON(http.StatusOK, entry)
}
