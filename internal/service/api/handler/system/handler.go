// Package system 헬스체크, 버전 정보 등 시스템 수준의 엔드포인트를 처리합니다.
package system

import (
	"fmt"
	"net/http"
	"time"

	"github.com/darkkaiser/cronhuman/internal/pkg/version"
	"github.com/darkkaiser/cronhuman/internal/service/api/constants"
	"github.com/darkkaiser/cronhuman/internal/service/api/model/system"
	"github.com/darkkaiser/cronhuman/internal/service/catalog"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
	"github.com/labstack/echo/v4"
)

// Lister 등록된 스케줄 목록을 제공하는 인터페이스
type Lister interface {
	List() []catalog.Entry
}

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	catalog Lister

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(c Lister, buildInfo version.Info) *Handler {
	if c == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	return &Handler{
		catalog:         c,
		buildInfo:       buildInfo,
		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 스케줄 카탈로그의 상태를 확인합니다. 모니터링 시스템에서 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	entries := h.catalog.List()

	invalid := 0
	for _, e := range entries {
		if !e.Valid {
			invalid++
		}
	}

	dep := system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: fmt.Sprintf("등록된 스케줄 %d개", len(entries)),
	}
	if invalid > 0 {
		dep.Message = fmt.Sprintf("등록된 스케줄 %d개 (실행할 수 없는 표현식 %d개)", len(entries), invalid)
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       constants.HealthStatusHealthy,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: map[string]system.DependencyStatus{constants.DependencyCatalog: dep},
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
	})
}
