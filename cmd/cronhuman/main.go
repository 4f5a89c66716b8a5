// cronhuman Cron 표현식을 사람이 읽을 수 있는 짧은 영문 문구로 변환합니다.
//
// 사용법:
//
//	cronhuman describe [--verbose] [--check] <expr>...
//	cronhuman serve [--config cronhuman.json]
//	cronhuman version
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/darkkaiser/cronhuman/internal/config"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
	"github.com/spf13/pflag"
)

// @title Cronhuman API
// @version 1.0.0
// @description Cron 표현식을 사람이 읽을 수 있는 문구로 변환하는 API 서버
// @description
// @description ## 주요 기능
// @description - Cron 표현식 단건/일괄 해석
// @description - 설정 파일에 등록된 스케줄 목록과 해석 결과 조회

// @contact.name DarkKaiser
// @contact.url https://github.com/darkkaiser

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

// 종료 코드
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errCheckFailed --check 옵션에서 실행할 수 없는 표현식이 발견되었을 때 반환합니다.
// 결과는 이미 출력되었으므로 별도의 에러 메시지를 출력하지 않습니다.
var errCheckFailed = errors.New("check failed")

// usageError 명령줄 사용법이 잘못되었음을 나타냅니다. 종료 코드 2와 함께 사용법이 출력됩니다.
//
// 설정 파일 검증 실패 같은 apperrors.InvalidInput 에러는 usageError가 아니며 종료 코드 1로 처리됩니다.
type usageError struct {
	msg string
	err error
}

func newUsageError(msg string, err error) error {
	return &usageError{msg: msg, err: err}
}

func (e *usageError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *usageError) Unwrap() error {
	return e.err
}

const usage = `사용법: cronhuman <command> [options]

Commands:
  describe [--verbose] [--check] <expr>...   Cron 표현식을 문구로 변환합니다 (인자가 없으면 표준 입력에서 한 줄씩 읽음)
  serve [--config file]                      API 서버를 실행합니다
  version                                    빌드 정보를 출력합니다
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run 하위 명령을 실행하고 프로세스 종료 코드를 반환합니다.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "describe":
		if closer, setupErr := applog.Setup(applog.NewCLIOptions(config.AppName)); setupErr == nil {
			defer closer.Close()
		}
		err = runDescribe(rest, stdin, stdout)
	case "serve":
		err = runServe(rest, stdout)
	case "version":
		err = runVersion(rest, stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "알 수 없는 명령입니다: %s\n\n%s", cmd, usage)
		return exitUsage
	}

	return exitCode(err, stderr)
}

// exitCode 명령 실행 결과를 종료 코드로 변환하고, 필요하면 에러 메시지를 출력합니다.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
		return exitOK
	case errors.Is(err, errCheckFailed):
		return exitFailure
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "%v\n\n%s", err, usage)
		return exitUsage
	}

	fmt.Fprintf(stderr, "[FATAL] %v\n", err)
	return exitFailure
}

// newFlagSet 하위 명령용 FlagSet을 생성합니다. 파싱 에러는 호출자가 처리합니다.
func newFlagSet(name string, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	return fs
}

// parseFlags 플래그를 파싱하고, 도움말 요청 외의 파싱 에러는 usageError로 변환합니다.
func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return newUsageError(fmt.Sprintf("%s: 잘못된 옵션입니다", fs.Name()), err)
	}
	return nil
}
