package log

import "os"

// callerPathPrefix 호출 위치 출력 시 잘라낼 모듈 경로
const callerPathPrefix = "github.com/darkkaiser/cronhuman"

// NewProductionOptions 서버(serve) 운영 환경을 위한 로그 설정을 반환합니다.
//
// 특징:
//   - INFO 이상을 메인 로그 파일에 기록하고, ERROR 이상은 *.critical.log에도 남깁니다.
//   - DEBUG 이하는 *.verbose.log로 분리되며 레벨이 INFO이면 기록되지 않습니다.
//   - 콘솔 출력은 하지 않습니다.
//   - 30일이 지난 백업 파일은 삭제됩니다. serve 명령은 설정 파일의 log.max_age로 덮어씁니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  false,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}

// NewDevelopmentOptions 서버(serve) 개발 환경을 위한 로그 설정을 반환합니다.
// 파일 분리 없이 한 파일에 기록하며 터미널에도 출력합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableConsoleLog: true,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}

// NewCLIOptions 일회성 CLI 명령(describe 등)을 위한 로그 설정을 반환합니다.
// 로그 파일을 만들지 않고, 명령의 결과 출력(stdout)과 섞이지 않도록 경고 이상만 표준 에러로 출력합니다.
func NewCLIOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: WarnLevel,

		FileDisabled:     true,
		EnableConsoleLog: true,
		Console:          os.Stderr,
	}
}
