package log

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

// resetForTest 테스트 간 독립성을 위해 패키지 전역 상태와 logrus 전역 설정을 초기화합니다.
func resetForTest(t *testing.T) {
	t.Helper()

	reset := func() {
		setupOnce = sync.Once{}
		globalCloser = nil
		globalSetupErr = nil

		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetReportCaller(false)
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	reset()
	t.Cleanup(func() {
		if globalCloser != nil {
			_ = globalCloser.Close()
		}
		reset()
	})
}

func TestSetup_Validation(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(tempFile, []byte("test"), 0644))

	tests := []struct {
		name        string
		opts        Options
		expectError string
	}{
		{
			name:        "Missing Name",
			opts:        Options{Dir: "logs"},
			expectError: "애플리케이션 식별자(Name)가 설정되지 않았습니다",
		},
		{
			name:        "Dir Conflicts with Existing File",
			opts:        Options{Name: "check-file", Dir: tempFile},
			expectError: "이미 파일로 존재합니다",
		},
		{
			name:        "Negative MaxAge",
			opts:        Options{Name: "neg", Dir: t.TempDir(), MaxAge: -1},
			expectError: "MaxAge",
		},
		{
			name:        "File Disabled without Console",
			opts:        Options{Name: "silent", FileDisabled: true},
			expectError: "모두 비활성화",
		},
		{
			name:        "File Disabled with Critical Split",
			opts:        Options{Name: "split", FileDisabled: true, EnableConsoleLog: true, EnableCriticalLog: true},
			expectError: "Critical/Verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetForTest(t)

			_, err := Setup(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestSetup_Defaults(t *testing.T) {
	resetForTest(t)

	cl, err := Setup(Options{Name: "defaults-app", Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, InfoLevel, GetLevel(), "기본 로그 레벨은 Info여야 합니다")

	c, ok := cl.(*closer)
	require.True(t, ok)
	require.Len(t, c.closers, 1, "Critical/Verbose가 비활성화되면 메인 파일만 생성됩니다")

	mainLogger, ok := c.closers[0].(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, defaultMaxSizeMB, mainLogger.MaxSize)
	assert.Equal(t, defaultMaxBackups, mainLogger.MaxBackups)
	assert.Equal(t, "defaults-app.log", filepath.Base(mainLogger.Filename))
}

func TestSetup_FileRouting(t *testing.T) {
	resetForTest(t)

	dir := t.TempDir()
	opts := Options{
		Name:              "routing",
		Dir:               dir,
		Level:             TraceLevel,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
	}

	cl, err := Setup(opts)
	require.NoError(t, err)

	WithComponent("test").Info("info-message")
	WithComponent("test").Error("error-message")
	WithComponent("test").Debug("debug-message")

	require.NoError(t, cl.Close())

	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(b)
	}

	mainLog := read("routing.log")
	assert.Contains(t, mainLog, "info-message")
	assert.Contains(t, mainLog, "error-message")
	assert.NotContains(t, mainLog, "debug-message")
	assert.Contains(t, mainLog, "component=test")

	criticalLog := read("routing.critical.log")
	assert.Contains(t, criticalLog, "error-message")
	assert.NotContains(t, criticalLog, "info-message")

	verboseLog := read("routing.verbose.log")
	assert.Contains(t, verboseLog, "debug-message")
	assert.NotContains(t, verboseLog, "info-message")
}

func TestSetup_ConsoleOnly(t *testing.T) {
	resetForTest(t)

	var buf bytes.Buffer
	opts := NewCLIOptions("cli")
	opts.Console = &buf

	cl, err := Setup(opts)
	require.NoError(t, err)

	c, ok := cl.(*closer)
	require.True(t, ok)
	assert.Empty(t, c.closers, "파일 로그가 비활성화되면 파일을 만들지 않아야 합니다")

	WithComponent("cli").Info("hidden")
	WithComponent("cli").Warn("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestSetup_Once(t *testing.T) {
	resetForTest(t)

	opts := Options{Name: "once", Dir: t.TempDir()}

	var wg sync.WaitGroup
	results := make([]any, 10)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cl, err := Setup(opts)
			assert.NoError(t, err)
			results[i] = cl
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r, "모든 호출은 동일한 Closer를 반환해야 합니다")
	}

	// 최초 호출 이후의 설정은 무시됩니다.
	_, err := Setup(Options{})
	assert.NoError(t, err)
}
