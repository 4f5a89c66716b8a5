package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/darkkaiser/cronhuman/internal/pkg/errors"
	"github.com/darkkaiser/cronhuman/pkg/cronx"
	applog "github.com/darkkaiser/cronhuman/pkg/log"
)

// runDescribe 인자로 받은 표현식(없으면 표준 입력의 각 줄)을 문구로 변환하여 한 줄씩 출력합니다.
//
// 출력 형식은 "표현식<TAB>문구"이며, --check를 지정하면 실행 가능 여부(valid/invalid)가 열로 추가되고
// 실행할 수 없는 표현식이 하나라도 있으면 errCheckFailed를 반환합니다.
// --verbose를 지정하면 각 줄 아래에 들여쓰기된 장문 설명이 출력됩니다.
func runDescribe(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("describe", stdout)
	verbose := fs.BoolP("verbose", "v", false, "모든 필드를 풀어 쓴 장문 설명을 함께 출력합니다")
	check := fs.BoolP("check", "c", false, "Cron 스케줄러가 실행할 수 있는 표현식인지 함께 검사합니다")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	exprs := fs.Args()
	if len(exprs) == 0 {
		var err error
		if exprs, err = readExpressions(stdin); err != nil {
			return err
		}
	}

	failed := false
	for _, expr := range exprs {
		// 표현식은 길이 검사를 포함해 입력된 그대로 해석하고 출력합니다.
		if strings.TrimSpace(expr) == "" {
			continue
		}

		line := expr + "\t" + cronx.Describe(expr)

		if *check {
			if err := cronx.Validate(expr); err != nil {
				failed = true
				line += "\tinvalid"

				applog.WithComponentAndFields("cli.describe", applog.Fields{
					"expr":  expr,
					"error": err,
				}).Debug("실행할 수 없는 표현식")
			} else {
				line += "\tvalid"
			}
		}

		fmt.Fprintln(stdout, line)

		if *verbose {
			if explanation, err := cronx.Explain(expr); err == nil {
				fmt.Fprintln(stdout, "  "+explanation)
			}
		}
	}

	if failed {
		return errCheckFailed
	}
	return nil
}

// readExpressions 표준 입력에서 표현식을 한 줄씩 읽습니다.
// 공백뿐인 줄과 '#'으로 시작하는 줄은 건너뛰며, 나머지 줄은 가공하지 않고 그대로 반환합니다.
func readExpressions(r io.Reader) ([]string, error) {
	var exprs []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "표준 입력을 읽는 중 오류가 발생했습니다")
	}

	return exprs, nil
}
