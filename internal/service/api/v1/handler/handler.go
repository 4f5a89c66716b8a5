// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
package handler

import (
	"github.com/darkkaiser/cronhuman/internal/service/api/constants"
	"github.com/darkkaiser/cronhuman/internal/service/catalog"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
	"github.com/labstack/echo/v4"
)

// Catalog 스케줄 카탈로그 조회 인터페이스
type Catalog interface {
	List() []catalog.Entry
	Get(id string) (catalog.Entry, error)
}

// Handler v1 API 요청을 처리합니다.
type Handler struct {
	catalog Catalog

	// maxBatchSize 일괄 해석 요청 한 번에 허용하는 최대 표현식 개수
	maxBatchSize int
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(c Catalog, maxBatchSize int) *Handler {
	if c == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	return &Handler{
		catalog:      c,
		maxBatchSize: maxBatchSize,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
