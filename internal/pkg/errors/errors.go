// Package errors 애플리케이션 전용 에러 처리 시스템을 제공합니다.
//
// 표준 errors 패키지 위에 타입 기반 에러 분류와 에러 체이닝을 더합니다.
// 모든 에러는 ErrorType으로 분류되며, Wrap으로 컨텍스트를 누적할 수 있습니다.
//
// # 기본 사용법
//
// 새 에러 생성:
//
//	err := errors.New(errors.NotFound, "스케줄을 찾을 수 없습니다")
//
// 에러 래핑 (컨텍스트 추가):
//
//	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
//	    return errors.Wrap(err, errors.ParsingFailed, "설정 파일 로드 중 오류가 발생했습니다")
//	}
//
// 에러 타입 검사:
//
//	if errors.Is(err, errors.NotFound) {
//	    // 404 응답
//	}
//
// # ErrorType 선택 가이드
//
// Internal:
//   - 내부 로직 오류 (버그로 간주)
//   - 예: "서비스가 초기화되지 않았습니다"
//
// System:
//   - 파일, 표준 입력, 로그 파일 등 인프라 수준의 장애
//   - 예: "설정 파일을 찾을 수 없습니다", "표준 입력을 읽는 중 오류가 발생했습니다"
//
// InvalidInput:
//   - 요청 값이나 설정 값의 유효성 검사 실패
//   - 예: "API 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다"
//
// NotFound:
//   - 요청한 리소스가 없음
//   - 예: "등록되지 않은 스케줄입니다"
//
// ParsingFailed:
//   - JSON 설정 파일, 요청 본문 등의 형식 오류
//
// Unavailable:
//   - 서비스 일시적 사용 불가 (종료 진행 중 등)
//
// # Wrap 시 타입 선택 원칙
//
// 1. 원인 에러가 AppError인 경우:
//   - 컨텍스트만 추가하고 같은 타입을 유지하는 것이 일반적입니다.
//   - API 계층은 UnderlyingType으로 가장 안쪽 타입을 확인하므로 바깥 타입을 바꿔도 분류는 유지됩니다.
//
// 2. 원인 에러가 외부 라이브러리 에러인 경우:
//   - 에러가 발생한 계층을 기준으로 고릅니다.
//   - 예: fs.ErrNotExist → System
//   - 예: koanf/mapstructure 디코딩 에러 → ParsingFailed
//   - 예: validator.ValidationErrors → InvalidInput
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 애플리케이션에서 발생하는 에러를 표준화하여 표현합니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type 에러의 타입을 반환합니다.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message 사용자에게 보여줄 메시지를 반환합니다. (원인 에러는 포함하지 않음)
func (e *AppError) Message() string {
	return e.message
}

// Stack 에러 생성 시점의 호출 스택을 반환합니다.
func (e *AppError) Stack() []StackFrame {
	return e.stack
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Format %+v 사용 시 에러 체인과 스택 트레이스를 출력합니다.
//
// 스택은 체인의 가장 안쪽 AppError(또는 외부 에러를 감싼 AppError)에서만 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			var inner *AppError
			if (e.cause == nil || !errors.As(e.cause, &inner)) && len(e.stack) > 0 {
				fmt.Fprint(s, "\nStack trace:")
				for _, frame := range e.stack {
					funcName := frame.Function
					if idx := strings.LastIndex(funcName, "/"); idx != -1 {
						funcName = funcName[idx+1:]
					}
					fmt.Fprintf(s, "\n\t%s:%d %s", frame.File, frame.Line, funcName)
				}
			}

			if e.cause != nil {
				fmt.Fprint(s, "\nCaused by:\n")
				if f, ok := e.cause.(fmt.Formatter); ok {
					f.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{
		errType: errType,
		message: message,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Newf 포맷 문자열을 사용하여 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrap 기존 에러를 감싸서 새로운 에러를 생성합니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: message,
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrapf 포맷 문자열을 사용하여 기존 에러를 감쌉니다. err이 nil이면 nil을 반환합니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Is 에러 체인에 특정 ErrorType의 AppError가 포함되어 있는지 확인합니다.
//
// 체인의 어느 위치에 있든 한 번이라도 일치하면 true를 반환합니다.
// 가장 안쪽 타입만 보려면 UnderlyingType을 사용합니다.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// As errors.As의 별칭입니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 에러 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	if err == nil {
		return nil
	}

	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

// UnderlyingType 에러 체인에서 가장 안쪽 AppError의 타입을 반환합니다.
//
// 체인 전체를 순회하면서 마지막으로 만난 AppError의 타입을 기억하므로,
// 여러 번 래핑되어 바깥 타입이 바뀌었더라도 처음 분류한 타입을 얻을 수 있습니다.
// 체인에 AppError가 없으면 Unknown을 반환합니다.
//
// 주요 사용 사례:
//   - HTTP 응답 코드 결정 시 에러의 근본 성격 파악
//   - 로그 레벨 결정 시 에러의 본질적 타입 확인
//
//	err := Wrap(New(NotFound, "스케줄 없음"), Internal, "조회 실패")
//	UnderlyingType(err) // NotFound
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
		err = errors.Unwrap(err)
	}
	return t
}
