// Package constants API 서비스 전반에서 사용하는 상수를 정의합니다.
package constants

import "time"

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentMiddleware   = "api.middleware"
	ComponentErrorHandler = "api.error_handler"
)

// 서버 설정 기본값입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 최대 시간
	DefaultRequestTimeout = 30 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기
	// 일괄 해석 요청(최대 1000개 x 1000자)을 수용할 수 있는 크기입니다.
	DefaultMaxBodySize = "2M"

	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)

// 헬스체크 상태 값입니다.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	// DependencyCatalog 외부 의존성 ID: 스케줄 카탈로그
	DependencyCatalog = "catalog"
)

// 쿼리 파라미터 키입니다.
const (
	QueryParamExpr    = "expr"
	QueryParamVerbose = "verbose"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
