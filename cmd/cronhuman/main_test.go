package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/darkkaiser/cronhuman/internal/config"
	apperrors "github.com/darkkaiser/cronhuman/internal/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI 주어진 인자와 표준 입력으로 CLI를 실행하고 종료 코드와 출력을 반환합니다.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestAppMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cronhuman", config.AppName)
	assert.Equal(t, "cronhuman.json", config.DefaultFilename)
	assert.NotContains(t, config.AppName, " ")
}

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "인자 없음", args: nil, wantCode: exitUsage, wantStderr: "사용법: cronhuman"},
		{name: "알 수 없는 명령", args: []string{"bogus"}, wantCode: exitUsage, wantStderr: "알 수 없는 명령입니다: bogus"},
		{name: "help", args: []string{"help"}, wantCode: exitOK, wantStdout: "사용법: cronhuman"},
		{name: "--help", args: []string{"--help"}, wantCode: exitOK, wantStdout: "Commands:"},
		{name: "version", args: []string{"version"}, wantCode: exitOK, wantStdout: "cronhuman "},
		{name: "describe 잘못된 옵션", args: []string{"describe", "--bogus"}, wantCode: exitUsage, wantStderr: "describe: 잘못된 옵션입니다"},
		{name: "describe 도움말", args: []string{"describe", "--help"}, wantCode: exitOK, wantStdout: "--verbose"},
		{name: "serve 불필요한 인자", args: []string{"serve", "extra"}, wantCode: exitUsage, wantStderr: "serve: 알 수 없는 인자입니다: extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := runCLI(t, "", tt.args...)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantStdout != "" {
				assert.Contains(t, stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr, tt.wantStderr)
			}
		})
	}
}

func TestRun_ServeConfigErrors(t *testing.T) {
	t.Parallel()

	t.Run("설정 파일 없음", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.json")
		code, _, stderr := runCLI(t, "", "serve", "--config", missing)

		assert.Equal(t, exitFailure, code)
		assert.Contains(t, stderr, "설정 파일을 찾을 수 없습니다")
	})

	t.Run("잘못된 설정 값", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cronhuman.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"http_server":{"listen_port":70000}}`), 0o600))

		code, _, stderr := runCLI(t, "", "serve", "-c", path)

		// 설정 검증 실패는 사용법 오류가 아니므로 사용법을 출력하지 않습니다.
		assert.Equal(t, exitFailure, code)
		assert.Contains(t, stderr, "[FATAL]")
		assert.Contains(t, stderr, "listen_port")
		assert.NotContains(t, stderr, "사용법:")
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStderr string
		wantUsage  bool
	}{
		{name: "성공", err: nil, wantCode: exitOK},
		{name: "도움말 요청", err: pflag.ErrHelp, wantCode: exitOK},
		{name: "검사 실패", err: errCheckFailed, wantCode: exitFailure},
		{
			name:       "사용법 오류",
			err:        newUsageError("describe: 잘못된 옵션입니다", errors.New("unknown flag: --bogus")),
			wantCode:   exitUsage,
			wantStderr: "describe: 잘못된 옵션입니다: unknown flag: --bogus",
			wantUsage:  true,
		},
		{
			name:       "감싼 사용법 오류",
			err:        fmt.Errorf("serve: %w", newUsageError("알 수 없는 인자입니다", nil)),
			wantCode:   exitUsage,
			wantStderr: "알 수 없는 인자입니다",
			wantUsage:  true,
		},
		{
			name:       "InvalidInput 에러는 사용법 오류가 아님",
			err:        apperrors.New(apperrors.InvalidInput, "설정 파일의 유효성 검증에 실패했습니다"),
			wantCode:   exitFailure,
			wantStderr: "[FATAL] [InvalidInput] 설정 파일의 유효성 검증에 실패했습니다",
		},
		{
			name:       "시스템 에러",
			err:        apperrors.New(apperrors.System, "표준 입력을 읽는 중 오류가 발생했습니다"),
			wantCode:   exitFailure,
			wantStderr: "[FATAL]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			assert.Equal(t, tt.wantCode, exitCode(tt.err, &stderr))

			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
			if tt.wantUsage {
				assert.Contains(t, stderr.String(), "사용법:")
			} else {
				assert.NotContains(t, stderr.String(), "사용법:")
			}
		})
	}
}

func TestRunVersion_Short(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "", "version", "--short")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
	assert.NotEmpty(t, strings.TrimSpace(stdout))
}
