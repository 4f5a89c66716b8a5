package log

import (
	"fmt"
	"io"
	"os"
)

// Options 로깅 시스템 설정입니다.
type Options struct {
	Name  string // 로그 파일명에 사용될 애플리케이션 식별자
	Dir   string // 로그 파일이 저장될 디렉토리 (기본값: "logs")
	Level Level  // 로그 레벨 (0이면 InfoLevel)

	MaxAge     int // 오래된 로그 삭제 기준일 (0: 삭제 안 함)
	MaxSizeMB  int // 로그 파일 최대 크기 (0: 기본값 100MB)
	MaxBackups int // 최대 백업 파일 수 (0: 기본값 20개)

	// FileDisabled true이면 로그 파일을 만들지 않습니다.
	// 일회성 CLI 명령처럼 파일 로그가 필요 없는 경우 콘솔 출력과 함께 사용합니다.
	FileDisabled bool

	EnableCriticalLog bool // ERROR 이상의 로그를 별도 파일(*.critical.log)로 분리
	EnableVerboseLog  bool // DEBUG 이하의 로그를 별도 파일(*.verbose.log)로 분리
	EnableConsoleLog  bool // 콘솔에도 로그를 출력할지 여부

	// Console 콘솔 출력 대상 (nil이면 os.Stdout)
	Console io.Writer

	// 로그를 호출한 소스 코드의 위치를 함께 기록할지 여부
	ReportCaller bool

	// 호출 위치의 함수 경로에서 잘라낼 접두어
	// 예: "github.com/darkkaiser/cronhuman" -> ".../internal/service/api.(*HTTPServer).Start(line:42)"
	CallerPathPrefix string
}

// Validate Options의 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.FileDisabled {
		if opts.EnableCriticalLog || opts.EnableVerboseLog {
			return fmt.Errorf("파일 로그가 비활성화된 상태에서는 Critical/Verbose 로그를 분리할 수 없습니다")
		}
		if !opts.EnableConsoleLog {
			return fmt.Errorf("파일 로그와 콘솔 로그가 모두 비활성화되어 있습니다")
		}
		return nil
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}
