package config

import (
	"fmt"

	apperrors "github.com/darkkaiser/cronhuman/internal/pkg/errors"
	"github.com/darkkaiser/cronhuman/pkg/cronx"
	"github.com/go-playground/validator/v10"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "cronhuman"

	// DefaultFilename 실행 인자로 설정 파일 경로가 주어지지 않았을 때 사용하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정 값을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: CRONHUMAN_HTTP_SERVER__LISTEN_PORT=8080 -> http_server.listen_port
	EnvPrefix = "CRONHUMAN_"

	DefaultListenPort        = 2443
	DefaultRequestsPerSecond = 20
	DefaultBurst             = 40
	DefaultMaxBatchSize      = 100
	DefaultLogLevel          = "info"
)

// AppConfig 애플리케이션 설정의 최상위 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Log        LogConfig        `json:"log"`
	HTTPServer HTTPServerConfig `json:"http_server"`
	CORS       CORSConfig       `json:"cors"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
	Describe   DescribeConfig   `json:"describe"`
	Schedules  []ScheduleConfig `json:"schedules" validate:"unique=ID,dive"`
}

// LogConfig 파일 로그 설정
type LogConfig struct {
	Dir    string `json:"dir"`
	Level  string `json:"level" validate:"omitempty,oneof=trace debug info warn error"`
	MaxAge int    `json:"max_age" validate:"min=0"`
}

// HTTPServerConfig API 서버의 포트와 TLS 설정
type HTTPServerConfig struct {
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,readable_file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,readable_file"`
}

// CORSConfig 교차 출처 리소스 공유(CORS) 허용 Origin 목록
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// RateLimitConfig 클라이언트 IP별 요청 속도 제한
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gt=0"`
	Burst             int     `json:"burst" validate:"min=1"`
}

// DescribeConfig 일괄 해석 요청의 제한
type DescribeConfig struct {
	MaxBatchSize int `json:"max_batch_size" validate:"min=1,max=1000"`
}

// ScheduleConfig 카탈로그에 등록할 스케줄 하나
//
// time_spec은 문구로 해석되지 않더라도 카탈로그에 그대로 등록되며, 해석 가능 여부는 조회 시 함께 제공됩니다.
type ScheduleConfig struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TimeSpec    string `json:"time_spec" validate:"required,max=1000"`
}

// newDefaultConfig 설정 파일과 환경 변수가 덮어쓰기 전의 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			MaxAge: 30,
		},
		HTTPServer: HTTPServerConfig{
			ListenPort: DefaultListenPort,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: DefaultRequestsPerSecond,
			Burst:             DefaultBurst,
		},
		Describe: DescribeConfig{
			MaxBatchSize: DefaultMaxBatchSize,
		},
	}
}

// validate 설정 값의 정합성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.CORS.validate(); err != nil {
		return err
	}

	if err := checkStruct(v, c, "설정"); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 강제하지는 않지만 운영상 권장되지 않는 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTPServer.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTPServer.ListenPort))
	}

	for _, s := range c.Schedules {
		if _, err := cronx.TryDescribe(s.TimeSpec); err != nil {
			warnings = append(warnings, fmt.Sprintf("Schedule['%s']의 time_spec('%s')을 사람이 읽을 수 있는 문구로 변환할 수 없습니다. 목록에는 원본 표현식이 그대로 표시됩니다", s.ID, s.TimeSpec))
		}
		if err := cronx.Validate(s.TimeSpec); err != nil {
			warnings = append(warnings, fmt.Sprintf("Schedule['%s']의 time_spec('%s')은 Cron 스케줄러가 실행할 수 없는 표현식입니다", s.ID, s.TimeSpec))
		}
	}

	return warnings
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) > 1 {
		for _, origin := range c.AllowOrigins {
			if origin == "*" {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}
		}
	}
	return nil
}
