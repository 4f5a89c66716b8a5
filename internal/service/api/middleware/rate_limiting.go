package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/cronhuman/internal/service/api/constants"
	"github.com/darkkaiser/cronhuman/internal/service/api/httputil"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ipRateLimiter IP 주소별로 독립적인 Token Bucket을 관리합니다.
//
// 동시성:
//   - 조회(getLimiter)는 RLock, 신규 생성은 Lock으로 보호됩니다.
//
// 메모리:
//   - IP 주소는 한 번 추가되면 서버 재시작 전까지 유지됩니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit // 초당 토큰 생성 속도
	burst    int        // 버킷 크기
}

// newIPRateLimiter IP 기반 Rate Limiter를 생성합니다.
//
// Parameters:
//   - requestsPerSecond: 초당 허용할 요청 수 (소수 허용, 예: 0.5 = 2초에 1개)
//   - burst: 한 번에 몰려도 허용할 최대 요청 수
//
// Returns:
//   - IP별 Limiter가 비어 있는 ipRateLimiter
func newIPRateLimiter(requestsPerSecond float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter IP에 대한 Limiter를 반환하며, 없으면 새로 생성합니다.
// 여러 고루틴에서 동시에 호출해도 같은 IP에는 항상 같은 Limiter가 반환됩니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	// 1. 읽기 락으로 기존 Limiter 조회
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	// 2. 없으면 쓰기 락을 잡고 다시 확인 (다른 고루틴이 먼저 생성했을 수 있음)
	i.mu.Lock()
	defer i.mu.Unlock()

	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	// 3. 새 Limiter 등록
	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

// RateLimiting IP 기반 요청 속도 제한 미들웨어를 반환합니다.
//
// 요청마다 클라이언트 IP의 버킷에서 토큰 1개를 소비하며, 토큰이 없으면 요청을 거부하고
// Retry-After 헤더와 함께 429 Too Many Requests를 응답합니다.
//
// Parameters:
//   - requestsPerSecond: 초당 토큰 생성 속도 (설정의 rate_limit.requests_per_second)
//   - burst: 버킷 크기 (설정의 rate_limit.burst)
//
// 사용 예시:
//
//	e.Use(middleware.RateLimiting(10, 20)) // 초당 10 요청, 순간 최대 20
//
// 주의사항:
//   - 메모리 기반이므로 서버를 재시작하면 초기화됩니다.
//   - 여러 인스턴스를 띄우면 인스턴스별로 따로 제한됩니다.
//
// Panics:
//   - requestsPerSecond가 0 이하인 경우
//   - burst가 0 이하인 경우
func RateLimiting(requestsPerSecond float64, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			// 토큰이 없으면 경고 로그를 남기고 429 응답
			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set("Retry-After", "1")

				return httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
			}

			return next(c)
		}
	}
}
