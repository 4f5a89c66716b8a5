package cronx

import (
	"errors"
	"fmt"
	"strings"
)

// maxExpressionLength 해석을 시도할 표현식의 최대 길이(바이트)입니다.
// 필드 파싱보다 먼저 검사하므로 어떤 입력이든 처리 비용이 표현식 길이에 비례하도록 제한됩니다.
const maxExpressionLength = 1000

var (
	// ErrExpressionTooLong 표현식이 maxExpressionLength를 초과한 경우
	ErrExpressionTooLong = errors.New("cronx: expression too long")

	// ErrFieldCount 필드 개수가 5개 또는 6개가 아닌 경우
	ErrFieldCount = errors.New("cronx: expected 5 or 6 fields")

	// ErrNoMatchingPattern 표현식은 올바르지만 사람이 읽을 수 있는 문구로 표현할 패턴이 없는 경우
	ErrNoMatchingPattern = errors.New("cronx: no matching pattern")
)

// Schedule 6개 필드(초 분 시 일 월 요일)를 파싱한 결과입니다.
// 5필드 표현식은 초 필드를 "0"으로 간주합니다.
type Schedule struct {
	Second     Field
	Minute     Field
	Hour       Field
	DayOfMonth Field
	Month      Field
	Weekday    Field
}

// Parse Cron 표현식을 필드 단위로 파싱합니다.
//
// 길이 초과, 필드 개수 오류, 필드 하나라도 파싱에 실패하면 에러를 반환하며,
// 부분적으로 파싱된 결과는 반환하지 않습니다.
func Parse(expr string) (*Schedule, error) {
	if len(expr) > maxExpressionLength {
		return nil, fmt.Errorf("%w: %d자", ErrExpressionTooLong, len(expr))
	}

	fields := strings.Fields(expr)
	switch len(fields) {
	case 5:
		fields = append([]string{"0"}, fields...)
	case 6:
	default:
		return nil, fmt.Errorf("%w: %d개", ErrFieldCount, len(fields))
	}

	domains := [...]domain{secondDomain, minuteDomain, hourDomain, dayDomain, monthDomain, weekdayDomain}

	var parsed [6]Field
	for i, d := range domains {
		f, err := parseField(fields[i], d)
		if err != nil {
			return nil, err
		}
		parsed[i] = f
	}

	return &Schedule{
		Second:     parsed[0],
		Minute:     parsed[1],
		Hour:       parsed[2],
		DayOfMonth: parsed[3],
		Month:      parsed[4],
		Weekday:    parsed[5],
	}, nil
}

// Describe 파싱된 스케줄을 사람이 읽을 수 있는 문구로 변환합니다.
func (s *Schedule) Describe() (string, error) {
	if phrase, ok := classify(s); ok {
		return phrase, nil
	}
	return "", ErrNoMatchingPattern
}

// TryDescribe Cron 표현식을 사람이 읽을 수 있는 문구로 변환하며, 변환하지 못한 이유를 에러로 반환합니다.
func TryDescribe(expr string) (string, error) {
	s, err := Parse(expr)
	if err != nil {
		return "", err
	}
	return s.Describe()
}

// Describe Cron 표현식을 사람이 읽을 수 있는 짧은 영문 문구로 변환합니다.
//
// 어떤 문자열이 주어져도 panic 없이 문자열을 반환합니다. 파싱할 수 없거나 일치하는 패턴이 없으면
// 입력을 그대로 반환하므로, 저장된 임의의 스케줄 문자열에 대해 조건 없이 호출할 수 있습니다.
//
// 예시:
//   - "0 */5 * * * *" -> "Every 5 minutes"
//   - "0 0 9 * * 1-5" -> "Weekdays at 9 AM"
//   - "0 99 * * * *"  -> "0 99 * * * *" (범위를 벗어남)
func Describe(expr string) string {
	phrase, err := TryDescribe(expr)
	if err != nil {
		return expr
	}
	return phrase
}
