// Package log logrus 기반의 전역 로깅 시스템을 제공합니다.
//
// 모든 로그는 Setup에서 등록한 Hook을 통해 레벨별로 분배되며,
// 컴포넌트 단위의 구조화된 로그는 WithComponent/WithComponentAndFields로 생성합니다.
package log

import (
	"context"
	"io"
	"maps"

	"github.com/sirupsen/logrus"
)

// componentKey 로그를 발생시킨 컴포넌트를 식별하는 필드 이름
const componentKey = "component"

// StandardLogger 전역 Logger를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 전역 Logger의 기본 출력 대상을 변경합니다. (주로 테스트에서 로그를 캡처할 때 사용)
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetLevel 전역 Logger의 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// GetLevel 전역 Logger의 현재 로그 레벨을 반환합니다.
func GetLevel() Level {
	return logrus.GetLevel()
}

// SetFormatter 전역 Logger의 기본 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// ParseLevel 문자열을 로그 레벨로 변환합니다. (예: "debug", "info", "warn")
func ParseLevel(s string) (Level, error) {
	return logrus.ParseLevel(s)
}

// WithFields 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithContext Context를 포함한 로그 Entry를 반환합니다.
func WithContext(ctx context.Context) *Entry {
	return logrus.WithContext(ctx)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// 전달된 fields는 변경되지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	maps.Copy(merged, fields)
	merged[componentKey] = component
	return logrus.WithFields(merged)
}
