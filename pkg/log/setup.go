package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileExt = "log"

	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	// setupOnce 프로세스 생명주기 동안 Setup이 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 Setup의 결과. 재호출 시 동일한 값을 반환합니다.
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화합니다.
//
// 여러 번 호출해도 최초 호출만 실제로 수행되며, 이후에는 최초 호출의 결과를 그대로 반환합니다.
//
// 주의:
//   - serve 명령은 설정 파일을 읽은 직후, describe 명령은 시작 시점에 호출합니다.
//   - 반환된 Closer는 defer로 Close하여 버퍼에 남은 로그가 파일에 기록되도록 해야 합니다.
//
// 사용 예시:
//
//	closer, err := log.Setup(log.NewProductionOptions("cronhuman"))
//	if err != nil {
//	    return err
//	}
//	defer closer.Close()
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

// setup 실제 초기화를 수행합니다. Setup에서 sync.Once를 통해 한 번만 호출됩니다.
func setup(opts Options) (_ io.Closer, err error) {
	// 1. 옵션 검증
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	// 2. 로그 레벨과 호출자 정보 기록 여부
	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 3. 실제 출력은 Hook이 담당하므로 기본 출력과 포맷팅은 비활성화합니다.
	logrus.SetOutput(io.Discard)
	logrus.SetFormatter(&silentFormatter{})

	h := &hook{formatter: newTextFormatter(opts.CallerPathPrefix)}

	// 4. 콘솔 출력 (Console을 지정하지 않으면 stdout)
	if opts.EnableConsoleLog {
		h.consoleWriter = opts.Console
		if h.consoleWriter == nil {
			h.consoleWriter = os.Stdout
		}
	}

	// 초기화 도중 실패하면 이미 연 파일을 모두 닫습니다.
	var closers []io.Closer
	defer func() {
		if err != nil {
			for _, c := range closers {
				_ = c.Close()
			}
		}
	}()

	// 5. 파일 출력 (Main은 항상, Critical/Verbose는 옵션에 따라)
	if !opts.FileDisabled {
		dir := opts.Dir
		if dir == "" {
			dir = defaultDir
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
		}

		mainLogger := newRotatingFile(dir, opts.Name, "", opts)
		closers = append(closers, mainLogger)
		h.mainWriter = mainLogger

		if opts.EnableCriticalLog {
			criticalLogger := newRotatingFile(dir, opts.Name, "critical", opts)
			closers = append(closers, criticalLogger)
			h.criticalWriter = criticalLogger
		}
		if opts.EnableVerboseLog {
			verboseLogger := newRotatingFile(dir, opts.Name, "verbose", opts)
			closers = append(closers, verboseLogger)
			h.verboseWriter = verboseLogger
		}
	}

	// 6. Hook 등록으로 라우팅 활성화
	logrus.AddHook(h)

	c := &closer{closers: closers, hook: h}

	// Fatal 로그로 인한 종료 직전에 버퍼를 비우고 파일을 닫습니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// newRotatingFile 로테이션 정책이 적용된 로그 파일을 생성합니다.
// 파일명: <name>.log 또는 <name>.<suffix>.log
func newRotatingFile(dir, name, suffix string, opts Options) *lumberjack.Logger {
	filename := name + "." + fileExt
	if suffix != "" {
		filename = name + "." + suffix + "." + fileExt
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, filename),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     opts.MaxAge,
		LocalTime:  true,
	}
}

// newTextFormatter 파일/콘솔 출력용 TextFormatter를 생성합니다.
// 호출자 정보는 "함수(line:N)" 형식으로 출력하며, callerPathPrefix는 "..."으로 축약합니다.
func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,         // TTY가 아니어도 항상 타임스탬프 출력
		TimestampFormat: time.RFC3339, // 2006-01-02T15:04:05Z07:00
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return function, ""
		},
	}
}
